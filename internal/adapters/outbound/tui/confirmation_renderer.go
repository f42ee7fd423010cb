package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openkraft/storefront/internal/domain"
)

var successHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(success)

// RenderConfirmation formats the thank-you view. A nil order renders the
// "no order details" notice.
func RenderConfirmation(order *domain.Order, currency string) string {
	var b strings.Builder

	header := successHeaderStyle.Render("✔ Thank You for Your Order!")
	sub := dimStyle.Render("Your order has been successfully placed.")
	b.WriteString(boxStyle.Render(header + "\n" + sub))
	b.WriteString("\n\n")

	if order == nil {
		b.WriteString("  " + dimStyle.Render("No order details available.") + "\n\n")
		return b.String()
	}

	b.WriteString("  " + titleStyle.Render("Order Summary") + "\n")
	b.WriteString("  " + separatorLine + "\n")
	field(&b, "Order ID", "#"+order.ID.String())
	field(&b, "Total Price", priceStyle.Render(order.TotalPrice.StringFixed(2)+" "+currency))
	field(&b, "Payment", order.PaymentMethod.Label())
	b.WriteString("\n")

	b.WriteString("  " + titleStyle.Render("Items in Your Order") + "\n")
	fmt.Fprintf(&b, "  %s %s %s %s\n",
		dimStyle.Render(padRight("Product Name", 28)),
		dimStyle.Render(padRight("Quantity", 10)),
		dimStyle.Render(padRight("Price", 14)),
		dimStyle.Render("Subtotal"),
	)
	for _, it := range order.Items {
		name := "Loading..."
		if it.Product != nil && it.Product.Name != "" {
			name = it.Product.Name
		}
		fmt.Fprintf(&b, "  %s %s %s %s\n",
			padRight(name, 28),
			padRight(fmt.Sprintf("%d", it.Quantity), 10),
			padRight(money(it.Price, currency), 14),
			money(it.Subtotal(), currency),
		)
	}
	b.WriteString("\n")
	return b.String()
}
