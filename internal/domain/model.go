package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product is the catalog record returned by GET /api/products/{id}.
type Product struct {
	ID          ID              `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Stock       int             `json:"stock"`
}

type Category struct {
	Name string `json:"name"`
}

// InStock reports whether the backend lists any units for sale.
func (p Product) InStock() bool { return p.Stock > 0 }

// CartItem is one line of a cart.
type CartItem struct {
	ProductID ID              `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// ItemFromProduct builds a cart line for product with the given quantity,
// clamped to a minimum of one.
func ItemFromProduct(p Product, quantity int) CartItem {
	return CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  ClampQuantity(quantity),
	}
}

// Subtotal is price × quantity, unrounded.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ClampQuantity enforces the minimum quantity of one. There is no upper bound;
// the backend is authoritative for stock.
func ClampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

// PaymentMethod is one of the fixed payment options offered at checkout.
type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "credit-card"
	PaymentPayPal         PaymentMethod = "paypal"
	PaymentCashOnDelivery PaymentMethod = "cash-on-delivery"
)

// PaymentMethods enumerates all accepted payment methods in display order.
var PaymentMethods = []PaymentMethod{
	PaymentCreditCard,
	PaymentPayPal,
	PaymentCashOnDelivery,
}

// ParsePaymentMethod normalizes user input. Both "cash-on-delivery" and
// "cash_on_delivery" map to PaymentCashOnDelivery.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "_", "-")
	for _, pm := range PaymentMethods {
		if string(pm) == norm {
			return pm, true
		}
	}
	return "", false
}

// Label is the human-readable name of the payment method.
func (pm PaymentMethod) Label() string {
	switch pm {
	case PaymentCreditCard:
		return "Credit Card"
	case PaymentPayPal:
		return "PayPal"
	case PaymentCashOnDelivery:
		return "Cash on Delivery"
	default:
		return string(pm)
	}
}

// OrderRequest is the payload of POST /api/orders.
type OrderRequest struct {
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Phone         string             `json:"phone"`
	Address       string             `json:"address"`
	TotalPrice    string             `json:"total_price"`
	PaymentMethod PaymentMethod      `json:"payment_method"`
	Items         []OrderRequestItem `json:"items"`
}

type OrderRequestItem struct {
	ProductID ID              `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
}

// Order is the server's record of a placed order.
type Order struct {
	ID            ID              `json:"id"`
	Name          string          `json:"name,omitempty"`
	Email         string          `json:"email,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Address       string          `json:"address,omitempty"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Items         []OrderItem     `json:"items"`
}

// OrderItem is an order line as echoed by the server. Product is only present
// when the backend eager-loads it.
type OrderItem struct {
	ProductID ID              `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
	Product   *OrderProduct   `json:"product,omitempty"`
}

type OrderProduct struct {
	Name string `json:"name"`
}

// Subtotal is price × quantity rounded to cents.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity))).Round(2)
}
