package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/storefront/internal/application"
)

// Services are the storefront flows exposed over MCP.
type Services struct {
	Store         *application.Store
	Products      *application.ProductService
	Checkout      *application.CheckoutService
	Confirmations *application.ConfirmationService
	// BaseURL is used to resolve product image references.
	BaseURL string
}

// NewStorefrontMCPServer creates an MCP server with the storefront tools and
// resources registered.
func NewStorefrontMCPServer(svc Services, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"storefront",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc)
	registerResources(s, svc)

	return s
}
