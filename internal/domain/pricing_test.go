package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkraft/storefront/internal/domain"
)

func item(id string, price string, qty int) domain.CartItem {
	return domain.CartItem{
		ProductID: domain.ID(id),
		Name:      "Product " + id,
		Price:     decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

func TestTotal_SumsLines(t *testing.T) {
	total, err := domain.Total([]domain.CartItem{
		item("1", "12.50", 2),
		item("2", "0.50", 1),
	})
	require.NoError(t, err)
	assert.Equal(t, "25.50", total.StringFixed(2))
}

func TestTotal_RoundsHalfAwayFromZero(t *testing.T) {
	total, err := domain.Total([]domain.CartItem{item("1", "0.125", 1)})
	require.NoError(t, err)
	assert.Equal(t, "0.13", total.StringFixed(2))

	total, err = domain.Total([]domain.CartItem{item("1", "0.333", 3)})
	require.NoError(t, err)
	assert.Equal(t, "1.00", total.StringFixed(2))
}

func TestTotal_NoFloatDrift(t *testing.T) {
	total, err := domain.Total([]domain.CartItem{
		item("1", "0.10", 1),
		item("2", "0.20", 1),
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.30").Equal(total))
}

func TestTotal_EmptyCart(t *testing.T) {
	_, err := domain.Total(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestNewQuote_KeepsSnapshot(t *testing.T) {
	snap := domain.CartSnapshot{
		Identity: domain.KindGuest,
		Items:    []domain.CartItem{item("7", "9.99", 3)},
		Revision: 4,
	}
	q, err := domain.NewQuote(snap)
	require.NoError(t, err)
	assert.Equal(t, snap, q.Snapshot)
	assert.Equal(t, "29.97", q.TotalString())
}

func TestNewQuote_Empty(t *testing.T) {
	_, err := domain.NewQuote(domain.CartSnapshot{Identity: domain.KindGuest})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestQuote_TotalStringHasTwoDecimals(t *testing.T) {
	q, err := domain.NewQuote(domain.CartSnapshot{Items: []domain.CartItem{item("1", "5", 2)}})
	require.NoError(t, err)
	assert.Equal(t, "10.00", q.TotalString())
}

func TestTotal_GuestScenario(t *testing.T) {
	q, err := domain.NewQuote(domain.CartSnapshot{
		Identity: domain.KindGuest,
		Items:    []domain.CartItem{item("1", "10.00", 2), item("2", "5.50", 1)},
	})
	require.NoError(t, err)
	assert.Equal(t, "25.50", q.TotalString())
}
