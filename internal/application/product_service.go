package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/openkraft/storefront/internal/domain"
)

// ProductService backs the product detail view:
// fetch product → (authenticated: persist to server cart) → update local cart.
type ProductService struct {
	catalog domain.ProductCatalog
	carts   domain.CartBackend
	store   *Store
	timeout time.Duration
	logger  *zap.Logger
	gate    requestGate
}

func NewProductService(
	catalog domain.ProductCatalog,
	carts domain.CartBackend,
	store *Store,
	timeout time.Duration,
	logger *zap.Logger,
) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		catalog: catalog,
		carts:   carts,
		store:   store,
		timeout: timeout,
		logger:  logger,
	}
}

// Get fetches a product for display.
func (s *ProductService) Get(ctx context.Context, id domain.ID) (*domain.Product, error) {
	if id.IsZero() {
		return nil, domain.NewValidationError("product id is required")
	}
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.catalog.GetProduct(ctx, id)
}

// AddToCart fetches productID and adds quantity units of it to the current
// identity's cart. For an authenticated user the server cart is updated
// first; if that fails the local cart is left as it was. Cancelling ctx
// abandons the request and its response is discarded.
func (s *ProductService) AddToCart(ctx context.Context, productID domain.ID, quantity int) (*domain.CartItem, error) {
	if productID.IsZero() {
		return nil, domain.NewValidationError("product id is required")
	}
	quantity = domain.ClampQuantity(quantity)

	t, err := s.gate.begin()
	if err != nil {
		return nil, err
	}
	stop := context.AfterFunc(ctx, func() { s.gate.abandon(t) })
	defer stop()

	identity := s.store.Identity()
	item, err := s.addRemote(ctx, identity, productID, quantity)
	if !s.gate.end(t) {
		s.logger.Debug("discarding add-to-cart response", zap.String("product_id", productID.String()))
		return nil, domain.ErrDiscarded
	}
	if err != nil {
		s.logger.Warn("add to cart failed",
			zap.String("product_id", productID.String()),
			zap.String("identity", string(identity.Kind())),
			zap.Error(err),
		)
		return nil, err
	}

	if err := s.store.Add(identity.Kind(), item); err != nil {
		return nil, fmt.Errorf("updating cart: %w", err)
	}
	s.logger.Info("added to cart",
		zap.String("product_id", productID.String()),
		zap.Int("quantity", quantity),
		zap.String("identity", string(identity.Kind())),
	)
	return &item, nil
}

func (s *ProductService) addRemote(ctx context.Context, identity domain.Identity, productID domain.ID, quantity int) (domain.CartItem, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	// 1. Fetch product details
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return domain.CartItem{}, err
	}
	item := domain.ItemFromProduct(*product, quantity)

	// 2. Persist to the server cart when signed in
	switch id := identity.(type) {
	case domain.Authenticated:
		if err := s.carts.AddToCart(ctx, id.Token, product.ID, quantity); err != nil {
			return domain.CartItem{}, err
		}
	case domain.Guest:
		// local cart only
	default:
		return domain.CartItem{}, fmt.Errorf("unknown identity %T", identity)
	}
	return item, nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
