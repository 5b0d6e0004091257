// Package rates provides access to the external exchange rate source.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/abgdnv/storefront/internal/currency"
)

// Client implements currency.Source over a JSON HTTP API returning
// {"base": "USD", "rates": {"EUR": 0.9, ...}}.
type Client struct {
	url string
	hc  *http.Client
}

// NewClient creates a new rate client for the given URL.
func NewClient(url string, hc *http.Client) *Client {
	return &Client{
		url: url,
		hc:  hc,
	}
}

type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Fetch retrieves the rate mapping from the rate endpoint.
// Returns an error if the response is not keyed by the base currency.
func (c *Client) Fetch(ctx context.Context) (currency.Rates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create rates request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate source returned unexpected status: %s", resp.Status)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode rates response: %w", err)
	}
	if body.Base != currency.BaseCode {
		return nil, fmt.Errorf("rate source base is %q, expected %q", body.Base, currency.BaseCode)
	}

	return currency.Rates(body.Rates), nil
}
