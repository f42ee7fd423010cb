package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/storefront/internal/application"
	"github.com/openkraft/storefront/internal/domain"
)

// registerTools registers all storefront MCP tools on the given server.
func registerTools(s *server.MCPServer, svc Services) {
	// 1. storefront_get_product
	s.AddTool(
		mcplib.NewTool("storefront_get_product",
			mcplib.WithDescription("Returns a product's details, price and stock as JSON"),
			mcplib.WithString("product_id",
				mcplib.Required(),
				mcplib.Description("ID of the product"),
			),
		),
		handleGetProduct(svc),
	)

	// 2. storefront_add_to_cart
	s.AddTool(
		mcplib.NewTool("storefront_add_to_cart",
			mcplib.WithDescription("Add a product to the current cart. Signed-in users' carts are updated on the server first."),
			mcplib.WithString("product_id",
				mcplib.Required(),
				mcplib.Description("ID of the product"),
			),
			mcplib.WithNumber("quantity", mcplib.Description("Whole number of units to add (default 1)")),
		),
		handleAddToCart(svc),
	)

	// 3. storefront_get_cart
	s.AddTool(
		mcplib.NewTool("storefront_get_cart",
			mcplib.WithDescription("Returns the current cart with its total"),
		),
		handleGetCart(svc),
	)

	// 4. storefront_checkout
	s.AddTool(
		mcplib.NewTool("storefront_checkout",
			mcplib.WithDescription("Place an order for the current cart. The cart is cleared only if the order is accepted."),
			mcplib.WithString("name", mcplib.Required(), mcplib.Description("Billing name")),
			mcplib.WithString("email", mcplib.Description("Email address, required for guests and ignored when signed in")),
			mcplib.WithString("phone", mcplib.Required(), mcplib.Description("Phone number")),
			mcplib.WithString("address", mcplib.Required(), mcplib.Description("Delivery address")),
			mcplib.WithString("payment_method",
				mcplib.Required(),
				mcplib.Description("One of credit-card, paypal, cash-on-delivery"),
			),
		),
		handleCheckout(svc),
	)

	// 5. storefront_get_confirmation
	s.AddTool(
		mcplib.NewTool("storefront_get_confirmation",
			mcplib.WithDescription("Returns the most recently placed order"),
		),
		handleGetConfirmation(svc),
	)
}

// productView adds the resolved image URL to a product.
type productView struct {
	*domain.Product
	ImageURL string `json:"image_url,omitempty"`
}

func handleGetProduct(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireString("product_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		p, err := svc.Products.Get(ctx, domain.ID(id))
		if err != nil {
			return failure(err), nil
		}
		return jsonResult(productView{Product: p, ImageURL: domain.ImageURL(svc.BaseURL, p.Image)})
	}
}

func handleAddToCart(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireString("product_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		quantity, err := quantityArg(request.GetArguments())
		if err != nil {
			return errorResult(err.Error()), nil
		}

		item, err := svc.Products.AddToCart(ctx, domain.ID(id), quantity)
		if err != nil {
			return failure(err), nil
		}
		return jsonResult(item)
	}
}

// quantityArg reads the optional quantity argument. JSON numbers arrive as
// float64, so fractional and out-of-range values are rejected rather than
// converted.
func quantityArg(args map[string]any) (int, error) {
	raw, ok := args["quantity"]
	if !ok || raw == nil {
		return 1, nil
	}
	q, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("quantity must be a number")
	}
	if q != math.Trunc(q) || q < 1 || q > math.MaxInt32 {
		return 0, fmt.Errorf("quantity must be a whole number between 1 and %d", math.MaxInt32)
	}
	return int(q), nil
}

// cartView is the cart as reported by the get-cart tool and the cart
// resource: the priced quote, or the bare snapshot when empty.
type cartView struct {
	Cart            any  `json:"cart"`
	CheckoutPending bool `json:"checkout_pending"`
}

func currentCart(svc Services) (cartView, error) {
	view := cartView{CheckoutPending: svc.Checkout.Pending()}
	quote, err := svc.Checkout.Prepare()
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		view.Cart = svc.Store.Snapshot()
	case err != nil:
		return cartView{}, err
	default:
		view.Cart = quote
	}
	return view, nil
}

func handleGetCart(svc Services) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		view, err := currentCart(svc)
		if err != nil {
			return failure(err), nil
		}
		return jsonResult(view)
	}
}

func handleCheckout(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		form := domain.CheckoutForm{}
		form.Name, _ = args["name"].(string)
		form.Email, _ = args["email"].(string)
		form.Phone, _ = args["phone"].(string)
		form.Address, _ = args["address"].(string)
		form.PaymentMethod, _ = args["payment_method"].(string)

		quote, err := svc.Checkout.Prepare()
		if err != nil {
			return failure(err), nil
		}
		order, err := svc.Checkout.Submit(ctx, quote, form)
		if err != nil {
			return failure(err), nil
		}
		return jsonResult(order)
	}
}

func handleGetConfirmation(svc Services) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		order, ok := svc.Confirmations.Load()
		if !ok {
			return textResult(application.NoOrderMessage), nil
		}
		return jsonResult(order)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns an error result with the given message.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}

// failure reports a classified error as JSON so the caller can tell
// validation problems from retryable ones.
func failure(err error) *mcplib.CallToolResult {
	var de *domain.Error
	if !errors.As(err, &de) {
		return errorResult(err.Error())
	}
	payload := struct {
		*domain.Error
		Retryable bool `json:"retryable"`
	}{de, de.Retryable()}
	data, mErr := json.Marshal(payload)
	if mErr != nil {
		return errorResult(err.Error())
	}
	return errorResult(string(data))
}
