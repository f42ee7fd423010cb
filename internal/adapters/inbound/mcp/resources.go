package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	cartURI         = "storefront://cart"
	confirmationURI = "storefront://confirmation"
)

// registerResources registers the read-only storefront resources.
func registerResources(s *server.MCPServer, svc Services) {
	s.AddResource(
		mcplib.NewResource(
			cartURI,
			"Cart",
			mcplib.WithResourceDescription("Current cart and its total"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCartResource(svc),
	)

	s.AddResource(
		mcplib.NewResource(
			confirmationURI,
			"Recent Order",
			mcplib.WithResourceDescription("Most recently placed order"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfirmationResource(svc),
	)
}

func handleCartResource(svc Services) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		view, err := currentCart(svc)
		if err != nil {
			return nil, fmt.Errorf("pricing cart: %w", err)
		}
		return jsonContents(cartURI, view)
	}
}

func handleConfirmationResource(svc Services) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		order, ok := svc.Confirmations.Load()
		if !ok {
			return jsonContents(confirmationURI, map[string]any{"order": nil})
		}
		return jsonContents(confirmationURI, map[string]any{"order": order})
	}
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
