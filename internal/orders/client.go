// Package orders forwards confirmed carts to the restaurant's order endpoint.
package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/angelmondragon/menucart/internal/cart"
	"github.com/angelmondragon/menucart/pkg/config"
	pkgerrors "github.com/angelmondragon/menucart/pkg/errors"
)

const (
	defaultTimeout             = 10 * time.Second
	responseBodyReadLimit int64 = 4096
)

var errEndpointRequired = errors.New("order endpoint url is required")

// Client posts order payloads to a single endpoint. It never retries.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient builds an order client from configuration.
func NewClient(cfg config.OrdersConfig, opts ...Option) (*Client, error) {
	endpoint := strings.TrimSpace(cfg.URL)
	if endpoint == "" {
		return nil, errEndpointRequired
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

// Receipt is what the order endpoint answered.
type Receipt struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body,omitempty"`
}

// Submit posts the payload once. Transport failures and non-2xx answers come
// back as dependency errors; the cart is left untouched either way.
func (c *Client) Submit(ctx context.Context, payload cart.OrderPayload) (*Receipt, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "order client not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal order payload")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build order request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute order request")
	}
	defer func() { _ = resp.Body.Close() }()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency,
			fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))),
			"order request failed").
			WithDetails(map[string]any{"status": resp.StatusCode})
	}

	receipt := &Receipt{Status: resp.StatusCode}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && json.Valid(trimmed) {
		receipt.Body = json.RawMessage(trimmed)
	}
	return receipt, nil
}
