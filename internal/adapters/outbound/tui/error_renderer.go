package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openkraft/storefront/internal/domain"
)

var (
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderError turns any error from a storefront operation into a message
// for the user, with field details for validation failures and a retry hint
// for retryable ones.
func RenderError(err error) string {
	var b strings.Builder

	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		fmt.Fprintf(&b, "  %s %s\n", warnStyle.Render("empty"), "Your cart is empty. Add a product before checking out.")
		return b.String()
	case errors.Is(err, domain.ErrSubmissionPending):
		fmt.Fprintf(&b, "  %s %s\n", warnStyle.Render("wait "), "A request is already in progress.")
		return b.String()
	case errors.Is(err, domain.ErrDiscarded):
		fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("skip "), "The request was abandoned.")
		return b.String()
	}

	var de *domain.Error
	if !errors.As(err, &de) {
		fmt.Fprintf(&b, "  %s %s\n", errorTagStyle.Render("error"), err.Error())
		return b.String()
	}

	fmt.Fprintf(&b, "  %s %s\n", errorTagStyle.Render(tagFor(de.Kind)), de.Message)
	for _, f := range de.Fields {
		fmt.Fprintf(&b, "         %s\n", dimStyle.Render("• "+f.Message))
	}
	if de.Retryable() {
		fmt.Fprintf(&b, "         %s\n", hintStyle.Render("Nothing was changed. Try again."))
	}
	return b.String()
}

func tagFor(kind domain.ErrorKind) string {
	switch kind {
	case domain.KindValidation:
		return "invalid"
	case domain.KindNetwork:
		return "offline"
	case domain.KindServer:
		return "server"
	case domain.KindNotFound:
		return "missing"
	default:
		return "error"
	}
}
