package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/openkraft/storefront/internal/domain"
)

// maxErrorBody bounds how much of an error response is read for its message.
const maxErrorBody = 64 << 10

// Client talks to the storefront REST API. It implements
// domain.ProductCatalog, domain.CartBackend and domain.OrderGateway.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New creates a client for baseURL. The http.Client timeout backs up the
// per-call context deadline set by the services.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *Client) GetProduct(ctx context.Context, id domain.ID) (*domain.Product, error) {
	segment, err := pathSegment(id)
	if err != nil {
		return nil, err
	}
	var p domain.Product
	err = c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/products/" + segment,
		resource: fmt.Sprintf("product %s", id),
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) AddToCart(ctx context.Context, token string, productID domain.ID, quantity int) error {
	segment, err := pathSegment(productID)
	if err != nil {
		return err
	}
	return c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/api/cart/addtocart/" + segment,
		token:    token,
		body:     map[string]int{"quantity": quantity},
		resource: fmt.Sprintf("product %s", productID),
	}, nil)
}

func (c *Client) PlaceOrder(ctx context.Context, req domain.OrderRequest, opts domain.PlaceOrderOptions) (*domain.Order, error) {
	var resp struct {
		Order *domain.Order `json:"order"`
	}
	err := c.do(ctx, request{
		method:         http.MethodPost,
		path:           "/api/orders",
		token:          opts.Token,
		idempotencyKey: opts.IdempotencyKey,
		body:           req,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Order == nil {
		return nil, domain.NewServerError(http.StatusOK, "order response did not include an order")
	}
	return resp.Order, nil
}

type request struct {
	method         string
	path           string
	token          string
	idempotencyKey string
	body           any
	// resource names what a 404 means is missing. When empty a 404 is a
	// rejected request like any other 4xx.
	resource string
}

// pathSegment escapes id for use as a single URL path segment.
func pathSegment(id domain.ID) (string, error) {
	s := id.String()
	if strings.TrimSpace(s) == "" || s == "." || s == ".." {
		return "", domain.NewValidationError(fmt.Sprintf("invalid id %q", s))
	}
	return url.PathEscape(s), nil
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	var body io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encoding %s request: %w", r.path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, body)
	if err != nil {
		return fmt.Errorf("building %s request: %w", r.path, err)
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	if r.idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", r.idempotencyKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("api request failed",
			zap.String("method", r.method),
			zap.String("path", r.path),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err),
		)
		return classifyTransport(err)
	}
	defer resp.Body.Close()

	c.logger.Debug("api request",
		zap.String("method", r.method),
		zap.String("path", r.path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return classifyStatus(resp.StatusCode, data, r.resource)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return classifyTransport(err)
		}
		return &domain.Error{
			Kind:    domain.KindServer,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("unexpected response from %s", r.path),
			Err:     err,
		}
	}
	return nil
}
