package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkraft/storefront/internal/domain"
)

func TestVersionCmd(t *testing.T) {
	h, _ := newHarness(t)
	out := h.mustRun("version")
	assert.Contains(t, out, "storefront dev")
}

func TestProductShow(t *testing.T) {
	h, _ := newHarness(t)
	out := h.mustRun("product", "show", "1")
	assert.Contains(t, out, "Mug")
	assert.Contains(t, out, "12.50 MAD")
	assert.Contains(t, out, "/storage/products/mug.png")
}

func TestProductShow_OutOfStock(t *testing.T) {
	h, _ := newHarness(t)
	out := h.mustRun("product", "show", "2")
	assert.Contains(t, out, "Out of Stock")
}

func TestProductShow_NotFound(t *testing.T) {
	h, _ := newHarness(t)
	_, errOut, err := h.run("product", "show", "99")
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.Contains(t, errOut, "Product not found")
}

func TestCartShow_Empty(t *testing.T) {
	h, _ := newHarness(t)
	out := h.mustRun("cart", "show")
	assert.Contains(t, out, "Your cart is empty.")
}

func TestCartAddAndShow(t *testing.T) {
	h, b := newHarness(t)
	h.mustRun("cart", "add", "1", "--quantity", "2")
	h.mustRun("cart", "add", "2")
	assert.Empty(t, b.cartAdds, "guest adds stay local")

	out := h.mustRun("cart", "show")
	assert.Contains(t, out, "Quantity: 2")
	assert.Contains(t, out, "25.50 MAD")

	out = h.mustRun("cart", "show", "--json")
	var quote domain.Quote
	require.NoError(t, json.Unmarshal([]byte(out), &quote))
	assert.Equal(t, "25.50", quote.TotalString())
	assert.Len(t, quote.Snapshot.Items, 2)
}

func TestCartRemoveAndClear(t *testing.T) {
	h, _ := newHarness(t)
	h.mustRun("cart", "add", "1")
	h.mustRun("cart", "add", "2")

	out := h.mustRun("cart", "remove", "2")
	assert.Contains(t, out, "Removed 2")

	_, _, err := h.run("cart", "remove", "2")
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	h.mustRun("cart", "clear")
	assert.Contains(t, h.mustRun("cart", "show"), "Your cart is empty.")
}

func TestCheckout_EmptyCart(t *testing.T) {
	h, b := newHarness(t)
	_, errOut, err := h.run("checkout", "--name", "Sara", "--email", "s@example.com",
		"--phone", "1", "--address", "A", "--payment", "paypal")
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Contains(t, errOut, "Your cart is empty")
	assert.Empty(t, b.orders)
}

func TestCheckout_GuestNeedsEmail(t *testing.T) {
	h, b := newHarness(t)
	h.mustRun("cart", "add", "1")

	_, errOut, err := h.run("checkout", "--name", "Sara", "--phone", "1", "--address", "A", "--payment", "paypal")
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.Contains(t, errOut, "email is required")
	assert.Empty(t, b.orders)
}

func TestCheckout_GuestFlow(t *testing.T) {
	h, b := newHarness(t)
	h.mustRun("cart", "add", "1", "-q", "2")
	h.mustRun("cart", "add", "2")

	out := h.mustRun("checkout", "--name", "Sara", "--email", "s@example.com",
		"--phone", "0600", "--address", "Rabat", "--payment", "cash_on_delivery")
	assert.Contains(t, out, "Cart Summary")
	assert.Contains(t, out, "Thank You for Your Order!")
	assert.Contains(t, out, "#501")
	assert.Contains(t, out, "Cash on Delivery")

	require.Len(t, b.orders, 1)
	assert.Equal(t, "25.50", b.orders[0]["total_price"])
	assert.Equal(t, "cash-on-delivery", b.orders[0]["payment_method"])
	assert.Equal(t, "s@example.com", b.orders[0]["email"])
	assert.Empty(t, b.authHeader)

	assert.Contains(t, h.mustRun("cart", "show"), "Your cart is empty.")

	out = h.mustRun("confirmation")
	assert.Contains(t, out, "#501")
	assert.Contains(t, out, "25.50 MAD")
}

func TestCheckout_ServerFailureKeepsCart(t *testing.T) {
	h, b := newHarness(t)
	b.failOrders = true
	h.mustRun("cart", "add", "1")

	_, errOut, err := h.run("checkout", "--name", "Sara", "--email", "s@example.com",
		"--phone", "1", "--address", "A", "--payment", "paypal")
	require.Error(t, err)
	assert.True(t, domain.IsRetryable(err))
	assert.Contains(t, errOut, "maintenance")
	assert.Contains(t, errOut, "Try again")

	assert.Contains(t, h.mustRun("cart", "show"), "12.50 MAD")
}

func TestLoginUsesServerCartAndAccountEmail(t *testing.T) {
	h, b := newHarness(t)
	h.mustRun("cart", "add", "2")

	out := h.mustRun("login", "--token", "tok", "--email", "acct@example.com")
	assert.Contains(t, out, "Signed in as acct@example.com")

	assert.Contains(t, h.mustRun("cart", "show"), "Your cart is empty.", "guest cart is not shown when signed in")

	h.mustRun("cart", "add", "1")
	assert.Equal(t, []string{"1"}, b.cartAdds)
	assert.Equal(t, "Bearer tok", b.authHeader)

	h.mustRun("checkout", "--name", "Sara", "--phone", "1", "--address", "A", "--payment", "credit-card")
	require.Len(t, b.orders, 1)
	assert.Equal(t, "acct@example.com", b.orders[0]["email"])
	assert.Equal(t, "12.50", b.orders[0]["total_price"])

	h.mustRun("logout")
	assert.Contains(t, h.mustRun("cart", "show"), "Sticker", "guest cart survives sign-in")
}

func TestLogin_RequiresFlags(t *testing.T) {
	h, _ := newHarness(t)
	_, _, err := h.run("login", "--email", "a@b.co")
	assert.Error(t, err)
}

func TestConfirmation_NoOrder(t *testing.T) {
	h, _ := newHarness(t)
	out := h.mustRun("confirmation")
	assert.Contains(t, out, "No order details available.")

	out = h.mustRun("confirmation", "--json")
	assert.JSONEq(t, `{"order": null}`, out)
}

func TestInvalidAPIURL(t *testing.T) {
	h, _ := newHarness(t)
	h.apiURL = "ftp://shop"
	_, _, err := h.run("cart", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
