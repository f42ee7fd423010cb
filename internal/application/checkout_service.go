package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openkraft/storefront/internal/domain"
)

// CheckoutService orchestrates order submission:
// quote → validate form → build request → place order → clear cart → record confirmation.
type CheckoutService struct {
	store         *Store
	orders        domain.OrderGateway
	confirmations domain.ConfirmationStore
	timeout       time.Duration
	logger        *zap.Logger
	gate          requestGate
}

func NewCheckoutService(
	store *Store,
	orders domain.OrderGateway,
	confirmations domain.ConfirmationStore,
	timeout time.Duration,
	logger *zap.Logger,
) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{
		store:         store,
		orders:        orders,
		confirmations: confirmations,
		timeout:       timeout,
		logger:        logger,
	}
}

// Prepare snapshots the current identity's cart and prices it. The returned
// Quote is what the summary displays and what Submit sends.
func (s *CheckoutService) Prepare() (domain.Quote, error) {
	return domain.NewQuote(s.store.Snapshot())
}

// Submit places an order for q. At most one submission runs at a time; a
// second call while one is pending fails with ErrSubmissionPending. On
// failure the cart is not touched and the error is classified so the caller
// can offer a retry. Cancelling ctx abandons the submission: the gate
// reopens at once and a late response is discarded with ErrDiscarded.
func (s *CheckoutService) Submit(ctx context.Context, q domain.Quote, form domain.CheckoutForm) (*domain.Order, error) {
	t, err := s.gate.begin()
	if err != nil {
		return nil, err
	}
	stop := context.AfterFunc(ctx, func() { s.gate.abandon(t) })
	defer stop()

	identity := s.store.Identity()
	order, err := s.place(ctx, identity, q, form)
	if !s.gate.end(t) {
		s.logger.Warn("discarding order response for abandoned checkout")
		return nil, domain.ErrDiscarded
	}
	if err != nil {
		if !errors.Is(err, domain.ErrEmptyCart) && domain.KindOf(err) != domain.KindValidation {
			s.logger.Error("order submission failed",
				zap.String("identity", string(identity.Kind())),
				zap.Bool("retryable", domain.IsRetryable(err)),
				zap.Error(err),
			)
		}
		return nil, err
	}

	// Order accepted: the cart and confirmation record are updated best-effort;
	// the order exists server-side either way.
	if err := s.store.Settle(q.Snapshot); err != nil {
		s.logger.Error("clearing cart after checkout", zap.String("order_id", order.ID.String()), zap.Error(err))
	}
	if err := s.confirmations.Save(order); err != nil {
		s.logger.Error("saving order confirmation", zap.String("order_id", order.ID.String()), zap.Error(err))
	}
	s.logger.Info("order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("total", q.TotalString()),
		zap.Int("items", len(q.Snapshot.Items)),
	)
	return order, nil
}

// Pending reports whether a submission is in flight.
func (s *CheckoutService) Pending() bool { return s.gate.isPending() }

func (s *CheckoutService) place(ctx context.Context, identity domain.Identity, q domain.Quote, form domain.CheckoutForm) (*domain.Order, error) {
	// 1. Reject empty or stale quotes before any network call
	if q.Snapshot.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}
	if q.Snapshot.Identity != identity.Kind() || q.Snapshot.Revision != s.store.Revision() {
		return nil, domain.NewValidationError("cart changed since the summary was shown; review the cart and try again")
	}

	// 2. Validate the form and assemble the request
	req, err := domain.BuildOrderRequest(form, identity, q)
	if err != nil {
		return nil, err
	}

	// 3. Submit once
	opts := domain.PlaceOrderOptions{IdempotencyKey: uuid.NewString()}
	if auth, ok := identity.(domain.Authenticated); ok {
		opts.Token = auth.Token
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.orders.PlaceOrder(ctx, req, opts)
}
