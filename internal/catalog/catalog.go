// Package catalog provides access to the external product catalog.
package catalog

import "context"

// Product is an immutable product record from the external catalog.
// Prices are expressed in the base currency.
type Product struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// Source is an external catalog source returning a sequence of product records.
type Source interface {
	// Fetch retrieves all product records from the catalog.
	// Returns an error if the catalog cannot be reached or decoded.
	Fetch(ctx context.Context) ([]Product, error)
}
