package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client implements Source over a fakestore-style JSON HTTP API.
type Client struct {
	url string
	hc  *http.Client
}

// NewClient creates a new catalog client for the given URL.
func NewClient(url string, hc *http.Client) *Client {
	return &Client{
		url: url,
		hc:  hc,
	}
}

// Fetch retrieves the product list from the catalog endpoint.
// Records with a negative price are dropped rather than failing the whole fetch.
func (c *Client) Fetch(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned unexpected status: %s", resp.Status)
	}

	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	valid := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Price < 0 {
			continue
		}
		valid = append(valid, p)
	}
	return valid, nil
}
