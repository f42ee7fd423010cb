package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

// CartSnapshot is a read-only copy of the cart a checkout will use. Revision
// is the store revision the copy was taken at.
type CartSnapshot struct {
	Identity IdentityKind `json:"identity"`
	Items    []CartItem   `json:"items"`
	Revision uint64       `json:"revision"`
}

func (s CartSnapshot) IsEmpty() bool { return len(s.Items) == 0 }

// Total sums price × quantity over items and rounds half away from zero to
// two decimal places.
func Total(items []CartItem) (decimal.Decimal, error) {
	if len(items) == 0 {
		return decimal.Zero, ErrEmptyCart
	}
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Subtotal())
	}
	return sum.Round(2), nil
}

// Quote pairs a snapshot with the total computed from it. The summary shown
// to the user and the order request are both built from the same Quote.
type Quote struct {
	Snapshot CartSnapshot    `json:"snapshot"`
	Total    decimal.Decimal `json:"total"`
}

func NewQuote(s CartSnapshot) (Quote, error) {
	total, err := Total(s.Items)
	if err != nil {
		return Quote{}, err
	}
	return Quote{Snapshot: s, Total: total}, nil
}

// TotalString formats the total with exactly two decimals, e.g. "25.50".
func (q Quote) TotalString() string { return q.Total.StringFixed(2) }
