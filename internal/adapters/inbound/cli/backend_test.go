package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openkraft/storefront/internal/adapters/inbound/cli"
)

// backend is a minimal storefront API for command tests.
type backend struct {
	mu         sync.Mutex
	orders     []map[string]any
	cartAdds   []string
	authHeader string
	failOrders bool
}

func newBackend(t *testing.T) (*backend, *httptest.Server) {
	t.Helper()
	b := &backend{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		switch r.PathValue("id") {
		case "1":
			writeJSON(w, http.StatusOK, map[string]any{
				"id": 1, "name": "Mug", "price": "12.50", "image": "products/mug.png",
				"description": "Ceramic", "category": map[string]any{"name": "Kitchen"}, "stock": 5,
			})
		case "2":
			writeJSON(w, http.StatusOK, map[string]any{"id": 2, "name": "Sticker", "price": 0.5, "stock": 0})
		default:
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "Product not found"})
		}
	})
	mux.HandleFunc("POST /api/cart/addtocart/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.cartAdds = append(b.cartAdds, r.PathValue("id"))
		b.authHeader = r.Header.Get("Authorization")
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"message": "added"})
	})
	mux.HandleFunc("POST /api/orders", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": err.Error()})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failOrders {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"message": "maintenance"})
			return
		}
		b.orders = append(b.orders, body)
		b.authHeader = r.Header.Get("Authorization")
		writeJSON(w, http.StatusCreated, map[string]any{"order": map[string]any{
			"id":             500 + len(b.orders),
			"total_price":    body["total_price"],
			"payment_method": body["payment_method"],
			"items": []map[string]any{
				{"product_id": 1, "quantity": 2, "price": "12.50", "product": map[string]any{"name": "Mug"}},
			},
		}})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return b, srv
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// harness runs commands against one backend and one storage dir.
type harness struct {
	t          *testing.T
	apiURL     string
	storageDir string
}

func newHarness(t *testing.T) (*harness, *backend) {
	t.Helper()
	b, srv := newBackend(t)
	return &harness{t: t, apiURL: srv.URL, storageDir: t.TempDir()}, b
}

func (h *harness) run(args ...string) (stdout, stderr string, err error) {
	h.t.Helper()
	var out, errOut bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append(args, "--api-url", h.apiURL, "--storage-dir", h.storageDir))
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, errOut, err := h.run(args...)
	require.NoError(h.t, err, "storefront %s\nstderr: %s", strings.Join(args, " "), errOut)
	return out
}
