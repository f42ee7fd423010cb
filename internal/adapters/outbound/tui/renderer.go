package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/openkraft/storefront/internal/domain"
)

// ── warm storefront palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	priceStyle    = lipgloss.NewStyle().Bold(true).Foreground(warning)
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderProduct formats the product detail view.
func RenderProduct(p *domain.Product, baseURL, currency string) string {
	var b strings.Builder

	title := headerStyle.Render(p.Name)
	price := priceStyle.Render(money(p.Price, currency))
	b.WriteString(boxStyle.Render(title + "\n\n" + price))
	b.WriteString("\n\n")

	field(&b, "Description", orDash(p.Description))
	field(&b, "Category", orDash(p.Category.Name))
	if p.InStock() {
		field(&b, "Stock", passStyle.Render(fmt.Sprintf("%d", p.Stock)))
	} else {
		field(&b, "Stock", failStyle.Render("Out of Stock"))
	}
	if img := domain.ImageURL(baseURL, p.Image); img != "" {
		field(&b, "Image", dimStyle.Render(img))
	}

	b.WriteString("\n")
	return b.String()
}

// RenderCart formats the cart summary for a quote. The total shown is the
// quote's total, the same value a checkout of this quote sends.
func RenderCart(q domain.Quote, baseURL, currency string) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Cart Summary"))
	b.WriteString("  " + dimStyle.Render(string(q.Snapshot.Identity)))
	b.WriteString("\n")
	b.WriteString("  " + separatorLine + "\n\n")

	for _, it := range q.Snapshot.Items {
		name := labelStyle.Render(padRight(it.Name, 28))
		qty := dimStyle.Render(fmt.Sprintf("Quantity: %d", it.Quantity))
		fmt.Fprintf(&b, "  %s %s  %s\n", name, qty, priceStyle.Render(money(it.Price, currency)))
		if img := domain.ImageURL(baseURL, it.Image); img != "" {
			fmt.Fprintf(&b, "  %s\n", faintStyle.Render(img))
		}
	}

	b.WriteString("\n  " + separatorLine + "\n")
	fmt.Fprintf(&b, "  %s %s\n\n", titleStyle.Render("Total:"), priceStyle.Render(q.TotalString()+" "+currency))
	return b.String()
}

// RenderEmptyCart is shown instead of a summary when there is nothing to buy.
func RenderEmptyCart() string {
	return "  " + dimStyle.Render("Your cart is empty.") + "\n"
}

// RenderAdded confirms an add-to-cart.
func RenderAdded(item *domain.CartItem) string {
	return fmt.Sprintf("  %s %s × %d\n",
		passStyle.Render("✓ Added"),
		titleStyle.Render(item.Name),
		item.Quantity,
	)
}

func field(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s %s\n", labelStyle.Render(padRight(label+":", 14)), value)
}

func money(d decimal.Decimal, currency string) string {
	return d.StringFixed(2) + " " + currency
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return dimStyle.Render("—")
	}
	return s
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
