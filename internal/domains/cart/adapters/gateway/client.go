// Package gateway submits checkouts to the storefront order API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/qashop/storefront-api/internal/domains/cart/ports"
)

var _ ports.OrderGateway = (*Client)(nil)

// Client is an HTTP order gateway for the POST /api/orders endpoint.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	idempotencyKey func() string
}

// Option configures the client.
type Option func(*Client)

// WithIdempotencyKey attaches Idempotency-Key headers produced by keyFn to
// every submission, making checkout retries replay-safe.
func WithIdempotencyKey(keyFn func() string) Option {
	return func(c *Client) {
		c.idempotencyKey = keyFn
	}
}

// NewClient builds the gateway with sane defaults.
func NewClient(baseURL string, httpClient *http.Client, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("order API base URL is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	c := &Client{baseURL: baseURL, httpClient: httpClient}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

type createResponse struct {
	Message      string   `json:"message"`
	OrderNumber  string   `json:"orderNumber"`
	OrderNumbers []string `json:"orderNumbers"`
	Error        string   `json:"error"`
}

// CreateOrder posts the submission and decodes the confirmation.
func (c *Client) CreateOrder(ctx context.Context, submission ports.CheckoutSubmission) (*ports.Receipt, error) {
	payload, err := json.Marshal(submission)
	if err != nil {
		return nil, fmt.Errorf("encode order submission: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.idempotencyKey != nil {
		if key := strings.TrimSpace(c.idempotencyKey()); key != "" {
			req.Header.Set("Idempotency-Key", key)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call order API: %w", err)
	}
	defer resp.Body.Close()

	var body createResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil && resp.StatusCode == http.StatusCreated {
		return nil, fmt.Errorf("decode order API response: %w", err)
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("order API error: %s", errorMessage(body, resp.Status))
	}
	return &ports.Receipt{
		OrderNumber:  body.OrderNumber,
		OrderNumbers: body.OrderNumbers,
	}, nil
}

func errorMessage(body createResponse, fallback string) string {
	if msg := strings.TrimSpace(body.Error); msg != "" {
		return msg
	}
	return fallback
}
