package order

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"campus-delivery/internal/apperr"
)

// Order is the delivery view of an order owned by the ordering service.
type Order struct {
	ID           int64     `json:"id"`
	Reference    string    `json:"reference"`
	CustomerID   int64     `json:"customer_id"`
	Status       string    `json:"status"`
	TotalPrice   string    `json:"total_price"`
	DeliveryAddr string    `json:"delivery_address"`
	CreatedAt    time.Time `json:"created_at"`
}

// HTTPGateway fetches orders from the ordering service over HTTP.
type HTTPGateway struct {
	httpc   *http.Client
	baseURL string
}

// NewHTTPGateway creates an orders gateway backed by HTTP.
func NewHTTPGateway(httpc *http.Client, baseURL string) *HTTPGateway {
	if httpc == nil || baseURL == "" {
		return nil
	}
	return &HTTPGateway{httpc: httpc, baseURL: baseURL}
}

// GetByID fetches an order by ID from the ordering service.
// A missing order is reported as (nil, nil).
func (g *HTTPGateway) GetByID(ctx context.Context, id int64) (*Order, error) {
	endpoint := fmt.Sprintf("%s/api/orders/%d", g.baseURL, id)
	resp, err := g.do(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("order gateway: GetByID: %w", err)
	}
	defer drainClose(resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("order gateway: GetByID: %w", statusError(resp.StatusCode))
	}

	var ord Order
	if err := json.NewDecoder(resp.Body).Decode(&ord); err != nil {
		return nil, fmt.Errorf("order gateway: GetByID: decode: %w", err)
	}
	return &ord, nil
}

// ListFrom fetches orders created at or after the given time.
func (g *HTTPGateway) ListFrom(ctx context.Context, from time.Time) ([]Order, error) {
	endpoint := fmt.Sprintf("%s/api/orders?from=%s", g.baseURL, url.QueryEscape(from.UTC().Format(time.RFC3339)))
	resp, err := g.do(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("order gateway: ListFrom: %w", err)
	}
	defer drainClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("order gateway: ListFrom: %w", statusError(resp.StatusCode))
	}

	var orders []Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("order gateway: ListFrom: decode: %w", err)
	}
	return orders, nil
}

func (g *HTTPGateway) do(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return g.httpc.Do(req)
}

// statusError keeps the upstream HTTP status inspectable for retry decisions.
type statusError int

func (e statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", int(e))
}

func (e statusError) Is(target error) bool {
	return target == apperr.ErrUpstream
}

func drainClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
