// Package service provides the implementation of storefront business logic.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/abgdnv/storefront/internal/cart"
	"github.com/abgdnv/storefront/internal/catalog"
	"github.com/abgdnv/storefront/internal/checkout"
	"github.com/abgdnv/storefront/internal/currency"
	"github.com/abgdnv/storefront/internal/persist"
	"github.com/abgdnv/storefront/internal/view"
	"github.com/google/uuid"
)

// StorefrontService defines the operations of the storefront session.
// It abstracts the underlying cart, currency and persistence plumbing.
type StorefrontService interface {
	// Hydrate populates the cart and currency selection from persisted state.
	Hydrate(ctx context.Context)

	// LoadCatalog replaces the product catalog from the external source.
	// On failure the prior catalog is left unchanged.
	LoadCatalog(ctx context.Context, src catalog.Source) error

	// LoadRates replaces the exchange rate table from the external source.
	// On failure the prior rates are left unchanged.
	LoadRates(ctx context.Context, src currency.Source) error

	// Catalog returns all products with prices converted to the selected currency.
	Catalog(ctx context.Context) []ProductDto

	// AddItem adds one unit of the given product to the cart.
	// Returns ErrProductNotFound if the product is absent from the catalog.
	AddItem(ctx context.Context, productID int64) (view.ViewModel, error)

	// RemoveItem deletes the cart line for the given product.
	// Removing an absent product is a no-op.
	RemoveItem(ctx context.Context, productID int64) view.ViewModel

	// SetQuantity sets the absolute quantity of a cart line.
	// Returns cart.ErrInvalidQuantity or cart.ErrLineNotFound without mutating.
	SetQuantity(ctx context.Context, productID int64, quantity int) (view.ViewModel, error)

	// AdjustQuantity applies a relative quantity change; a result of zero or
	// below removes the line.
	AdjustQuantity(ctx context.Context, productID int64, delta int) view.ViewModel

	// SelectCurrency sets and persists the display currency. It always succeeds.
	SelectCurrency(ctx context.Context, code string) view.ViewModel

	// View returns the current cart projection.
	View(ctx context.Context) view.ViewModel

	// Checkout produces the checkout message for the current cart and hands
	// it to the notification sink.
	Checkout(ctx context.Context) CheckoutDto
}

// ProductDto represents a catalog product with its price converted to the
// selected display currency.
type ProductDto struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
	PriceLabel string  `json:"price_label"`
}

// CheckoutDto represents the outcome of a checkout request.
type CheckoutDto struct {
	Message   string `json:"message"`
	ReceiptID string `json:"receipt_id,omitempty"`
}

// Service implements StorefrontService. It is the single owner of the session
// state; the mutex serializes triggers so no partial mutation is ever
// observable between them.
type Service struct {
	mu       sync.Mutex
	cart     *cart.Cart
	table    *currency.Table
	products []catalog.Product
	byID     map[int64]catalog.Product
	store    *persist.Adapter
	notifier checkout.Notifier
	logger   *slog.Logger
}

// NewService creates a new storefront service with an empty cart and catalog.
func NewService(store *persist.Adapter, notifier checkout.Notifier, logger *slog.Logger) *Service {
	return &Service{
		cart:     cart.New(),
		table:    currency.NewTable(),
		byID:     make(map[int64]catalog.Product),
		store:    store,
		notifier: notifier,
		logger:   logger.With("component", "service"),
	}
}

// Hydrate populates the cart and currency selection from persisted state.
// Malformed persisted state hydrates as empty/default.
func (s *Service) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.store.LoadCart()
	s.cart.Hydrate(lines)
	s.table.Select(s.store.LoadPreferredCurrency())
	s.logger.InfoContext(ctx, "Session hydrated",
		"lines", len(s.cart.Lines()),
		"currency", s.table.Selected(),
	)
}

// LoadCatalog replaces the product catalog wholesale from the external source.
func (s *Service) LoadCatalog(ctx context.Context, src catalog.Source) error {
	products, err := src.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	s.byID = make(map[int64]catalog.Product, len(products))
	for _, p := range products {
		s.byID[p.ID] = p
	}
	s.logger.InfoContext(ctx, "Catalog loaded", "products", len(products))
	return nil
}

// LoadRates replaces the exchange rate table wholesale from the external source.
func (s *Service) LoadRates(ctx context.Context, src currency.Source) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.table.Load(ctx, src); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Exchange rates loaded", "rates", s.table.Len())
	return nil
}

// Catalog returns all products with prices converted to the selected currency.
func (s *Service) Catalog(_ context.Context) []ProductDto {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := s.table.Selected()
	dtos := make([]ProductDto, len(s.products))
	for i, p := range s.products {
		converted := s.table.ConvertSelected(p.Price)
		dtos[i] = ProductDto{
			ID:         p.ID,
			Title:      p.Title,
			Image:      p.Image,
			Price:      converted,
			PriceLabel: view.Label(code, converted),
		}
	}
	return dtos
}

// AddItem adds one unit of the given catalog product to the cart.
func (s *Service) AddItem(ctx context.Context, productID int64) (view.ViewModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.byID[productID]
	if !ok {
		return s.project(), fmt.Errorf("failed to add product %d: %w", productID, ErrProductNotFound)
	}
	s.cart.AddItem(product)
	s.persistCart(ctx)
	return s.project(), nil
}

// RemoveItem deletes the cart line for the given product.
func (s *Service) RemoveItem(ctx context.Context, productID int64) view.ViewModel {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.RemoveItem(productID)
	s.persistCart(ctx)
	return s.project()
}

// SetQuantity sets the absolute quantity of a cart line.
func (s *Service) SetQuantity(ctx context.Context, productID int64, quantity int) (view.ViewModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cart.SetQuantity(productID, quantity); err != nil {
		return s.project(), err
	}
	s.persistCart(ctx)
	return s.project(), nil
}

// AdjustQuantity applies a relative quantity change to a cart line.
func (s *Service) AdjustQuantity(ctx context.Context, productID int64, delta int) view.ViewModel {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.AdjustQuantity(productID, delta)
	s.persistCart(ctx)
	return s.project()
}

// SelectCurrency sets and persists the display currency.
func (s *Service) SelectCurrency(ctx context.Context, code string) view.ViewModel {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.table.Select(code)
	if err := s.store.SavePreferredCurrency(code); err != nil {
		s.logger.WarnContext(ctx, "Failed to persist currency preference", "error", err)
	}
	return s.project()
}

// View returns the current cart projection.
func (s *Service) View(_ context.Context) view.ViewModel {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.project()
}

// Checkout produces the checkout message for the current cart, delivers it to
// the notification sink and, for a non-empty cart, attaches a receipt ID.
func (s *Service) Checkout(ctx context.Context) CheckoutDto {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := s.cart.Total(s.table.ConvertSelected)
	message := checkout.Message(s.table.Selected(), total)
	s.notifier.Notify(ctx, message)

	result := CheckoutDto{Message: message}
	if total != 0 {
		result.ReceiptID = uuid.NewString()
	}
	return result
}

// persistCart saves the cart after a mutation. A failed save leaves the
// in-memory cart authoritative for the session; it just will not survive a
// reload.
func (s *Service) persistCart(ctx context.Context) {
	if err := s.store.SaveCart(s.cart.Lines()); err != nil {
		s.logger.WarnContext(ctx, "Failed to persist cart", "error", err)
	}
}

// project recomputes the view model from current state. Callers hold the lock.
func (s *Service) project() view.ViewModel {
	return view.Project(s.cart.Lines(), s.table)
}
