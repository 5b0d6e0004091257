// Package currency holds the exchange rate table and the selected display currency.
package currency

import (
	"context"
	"fmt"
)

// BaseCode is the currency in which product prices are natively stored.
// It is always a valid selection, even when absent from the rate mapping.
const BaseCode = "USD"

// Rates maps a currency code to its multiplicative rate relative to the base currency.
type Rates map[string]float64

// Source is an external rate source keyed by the base currency.
type Source interface {
	// Fetch retrieves the rate mapping relative to the base currency.
	Fetch(ctx context.Context) (Rates, error)
}

// Table holds the rate mapping and the currently selected currency code.
// Selection is decoupled from availability: a selected code without a loaded
// rate simply converts as identity until rates arrive.
type Table struct {
	rates    Rates
	selected string
}

// NewTable creates an empty table with the base currency selected.
func NewTable() *Table {
	return &Table{
		rates:    make(Rates),
		selected: BaseCode,
	}
}

// Load replaces the rate mapping wholesale from the given source.
// On failure the prior mapping and selection are left unchanged and the
// error is returned for the caller to report.
func (t *Table) Load(ctx context.Context, src Source) error {
	fetched, err := src.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to load exchange rates: %w", err)
	}

	rates := make(Rates, len(fetched))
	for code, rate := range fetched {
		if rate <= 0 {
			continue
		}
		rates[code] = rate
	}
	t.rates = rates
	return nil
}

// Convert returns the amount multiplied by the rate of the given code.
// A code absent from the mapping converts as identity (rate 1), effectively
// pricing in the base currency.
func (t *Table) Convert(amountInBase float64, code string) float64 {
	if rate, ok := t.rates[code]; ok {
		return amountInBase * rate
	}
	return amountInBase
}

// ConvertSelected converts the amount to the currently selected currency.
func (t *Table) ConvertSelected(amountInBase float64) float64 {
	return t.Convert(amountInBase, t.selected)
}

// Select sets the selected currency code. It always succeeds, regardless of
// whether the code is present in the mapping.
func (t *Table) Select(code string) {
	t.selected = code
}

// Selected returns the currently selected currency code.
func (t *Table) Selected() string {
	return t.selected
}

// Len returns the number of loaded rates.
func (t *Table) Len() int {
	return len(t.rates)
}
