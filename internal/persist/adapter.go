// Package persist serializes session state into durable key-value slots.
package persist

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/abgdnv/storefront/internal/cart"
	"github.com/abgdnv/storefront/internal/currency"
	"github.com/abgdnv/storefront/internal/storage"
)

const (
	cartSlot     = "cart"
	currencySlot = "currency"
)

// Adapter persists the cart line sequence and the preferred currency code.
// Only product and quantity are stored, never derived totals.
type Adapter struct {
	slots  storage.Slots
	logger *slog.Logger
}

// NewAdapter creates a new Adapter over the given slot store.
func NewAdapter(slots storage.Slots, logger *slog.Logger) *Adapter {
	return &Adapter{
		slots:  slots,
		logger: logger.With("component", "persist"),
	}
}

// SaveCart serializes the line sequence into the cart slot, overwriting any
// prior value. Called after every cart mutation so a reload reflects the
// latest state.
func (a *Adapter) SaveCart(lines []cart.Line) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := a.slots.Set(cartSlot, payload); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// LoadCart returns the previously saved line sequence. Absent or malformed
// stored state loads as an empty sequence, never as an error.
func (a *Adapter) LoadCart() []cart.Line {
	payload, ok, err := a.slots.Get(cartSlot)
	if err != nil {
		a.logger.Warn("Failed to read persisted cart, starting empty", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var lines []cart.Line
	if err := json.Unmarshal(payload, &lines); err != nil {
		a.logger.Warn("Persisted cart is malformed, starting empty", "error", err)
		return nil
	}
	return lines
}

// SavePreferredCurrency stores the preferred currency code, overwriting any
// prior value.
func (a *Adapter) SavePreferredCurrency(code string) error {
	if err := a.slots.Set(currencySlot, []byte(code)); err != nil {
		return fmt.Errorf("failed to save preferred currency: %w", err)
	}
	return nil
}

// LoadPreferredCurrency returns the previously saved currency code, or the
// base currency code when absent or unreadable.
func (a *Adapter) LoadPreferredCurrency() string {
	payload, ok, err := a.slots.Get(currencySlot)
	if err != nil {
		a.logger.Warn("Failed to read preferred currency, using base", "error", err)
		return currency.BaseCode
	}
	if !ok || len(payload) == 0 {
		return currency.BaseCode
	}
	return string(payload)
}
