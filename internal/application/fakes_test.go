package application_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/openkraft/storefront/internal/domain"
)

type fakeCatalog struct {
	products map[domain.ID]domain.Product
	err      error
	calls    int
}

func newCatalog(products ...domain.Product) *fakeCatalog {
	c := &fakeCatalog{products: map[domain.ID]domain.Product{}}
	for _, p := range products {
		c.products[p.ID] = p
	}
	return c
}

func (c *fakeCatalog) GetProduct(_ context.Context, id domain.ID) (*domain.Product, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	p, ok := c.products[id]
	if !ok {
		return nil, domain.NewNotFoundError("product " + id.String() + " not found")
	}
	return &p, nil
}

type cartCall struct {
	token     string
	productID domain.ID
	quantity  int
}

type fakeCarts struct {
	err   error
	calls []cartCall
}

func (c *fakeCarts) AddToCart(_ context.Context, token string, productID domain.ID, quantity int) error {
	c.calls = append(c.calls, cartCall{token, productID, quantity})
	return c.err
}

type fakeOrders struct {
	mu      sync.Mutex
	err     error
	order   *domain.Order
	calls   []domain.OrderRequest
	opts    []domain.PlaceOrderOptions
	started chan struct{}
	release chan struct{}
	// ignoreCancel keeps PlaceOrder blocked on release after ctx is done,
	// like a server that answers after the client gave up.
	ignoreCancel bool
}

func (o *fakeOrders) PlaceOrder(ctx context.Context, req domain.OrderRequest, opts domain.PlaceOrderOptions) (*domain.Order, error) {
	o.mu.Lock()
	o.calls = append(o.calls, req)
	o.opts = append(o.opts, opts)
	o.mu.Unlock()

	if o.started != nil {
		o.started <- struct{}{}
	}
	if o.release != nil && o.ignoreCancel {
		<-o.release
	} else if o.release != nil {
		select {
		case <-o.release:
		case <-ctx.Done():
			return nil, domain.NewNetworkError("request cancelled", ctx.Err())
		}
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.order != nil {
		return o.order, nil
	}
	return &domain.Order{
		ID:            "101",
		TotalPrice:    decimal.RequireFromString(req.TotalPrice),
		PaymentMethod: req.PaymentMethod,
	}, nil
}

func (o *fakeOrders) callCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.calls)
}

type memSessions struct {
	state   *domain.SessionState
	loadErr error
	saveErr error
	saves   int
}

func (m *memSessions) Load() (*domain.SessionState, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.state, nil
}

func (m *memSessions) Save(st *domain.SessionState) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	cp := *st
	m.state = &cp
	return nil
}

type memConfirmations struct {
	order   *domain.Order
	loadErr error
	saveErr error
}

func (m *memConfirmations) Load() (*domain.Order, error) { return m.order, m.loadErr }

func (m *memConfirmations) Save(order *domain.Order) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.order = order
	return nil
}

func mug() domain.Product {
	return domain.Product{ID: "1", Name: "Mug", Price: decimal.RequireFromString("12.50"), Image: "mug.png", Stock: 5}
}

func sticker() domain.Product {
	return domain.Product{ID: "2", Name: "Sticker", Price: decimal.RequireFromString("0.50"), Stock: 100}
}

func pen() domain.Product {
	return domain.Product{ID: "3", Name: "Pen", Price: decimal.RequireFromString("2.00"), Stock: 40}
}

func checkoutForm() domain.CheckoutForm {
	return domain.CheckoutForm{
		Name:          "Sara",
		Email:         "sara@example.com",
		Phone:         "0600000000",
		Address:       "12 Rue X",
		PaymentMethod: "cash-on-delivery",
	}
}
