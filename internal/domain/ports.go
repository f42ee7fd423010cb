package domain

import "context"

// ProductCatalog fetches product records from the backend.
type ProductCatalog interface {
	GetProduct(ctx context.Context, id ID) (*Product, error)
}

// CartBackend persists cart additions for authenticated users.
type CartBackend interface {
	AddToCart(ctx context.Context, token string, productID ID, quantity int) error
}

// OrderGateway places orders.
type OrderGateway interface {
	PlaceOrder(ctx context.Context, req OrderRequest, opts PlaceOrderOptions) (*Order, error)
}

// PlaceOrderOptions carries per-submission request metadata.
type PlaceOrderOptions struct {
	Token          string // empty for guests
	IdempotencyKey string
}

// SessionState is the persisted client-side store.
type SessionState struct {
	Identity  Identity
	Cart      Cart
	GuestCart Cart
	Revision  uint64
}

// SessionStore loads and saves the client-side store.
type SessionStore interface {
	Load() (*SessionState, error)
	Save(state *SessionState) error
}

// ConfirmationStore is the single-slot record of the most recent order.
// Load returns (nil, nil) when no record exists.
type ConfirmationStore interface {
	Load() (*Order, error)
	Save(order *Order) error
}

// ConfigLoader reads client settings.
type ConfigLoader interface {
	Load(path string) (Config, error)
}
