// Package rest provides HTTP handlers for the storefront API.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abgdnv/storefront/internal/cart"
	"github.com/abgdnv/storefront/internal/service"
	"github.com/abgdnv/storefront/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service  service.StorefrontService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new instance of the storefront API with the provided service.
func NewHandler(service service.StorefrontService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the storefront.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", h.Catalog)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.View)
			r.Post("/items", h.AddItem)

			r.Route("/items/{id}", func(r chi.Router) {
				r.Put("/", h.SetQuantity)
				r.Patch("/", h.AdjustQuantity)
				r.Delete("/", h.RemoveItem)
			})
		})

		r.Put("/currency", h.SelectCurrency)
		r.Post("/checkout", h.Checkout)
	})

	r.Get("/healthz", h.HealthCheck)
}

// AddItemDto represents the request body for adding a product to the cart.
type AddItemDto struct {
	ProductID int64 `json:"product_id" validate:"required"`
}

// SetQuantityDto represents the request body for an absolute quantity set.
type SetQuantityDto struct {
	Quantity int `json:"quantity" validate:"required"`
}

// AdjustQuantityDto represents the request body for a relative quantity change.
type AdjustQuantityDto struct {
	Delta int `json:"delta" validate:"required"`
}

// SelectCurrencyDto represents the request body for selecting a display currency.
type SelectCurrencyDto struct {
	Code string `json:"code" validate:"required,len=3,uppercase"`
}

// Catalog returns all products priced in the selected currency.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	products := h.service.Catalog(r.Context())
	mLogger.DebugContext(r.Context(), "Catalog requested", "products", len(products))
	web.RespondJSON(w, mLogger, http.StatusOK, products)
}

// View returns the current cart projection.
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	web.RespondJSON(w, mLogger, http.StatusOK, h.service.View(r.Context()))
}

// AddItem adds one unit of a catalog product to the cart.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto AddItemDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !h.validateBody(w, r, mLogger, dto) {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to add item", "ID", dto.ProductID)
	vm, err := h.service.AddItem(r.Context(), dto.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found", "ID", dto.ProductID)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %d not found", dto.ProductID))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error adding item", "ID", dto.ProductID, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to add product with ID %d", dto.ProductID))
		return
	}
	mLogger.InfoContext(r.Context(), "Item added to cart", "ID", dto.ProductID, "item_count", vm.ItemCount)
	web.RespondJSON(w, mLogger, http.StatusOK, vm)
}

// SetQuantity sets the absolute quantity of a cart line.
func (h *Handler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var dto SetQuantityDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !h.validateBody(w, r, mLogger, dto) {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to set quantity", "ID", id, "quantity", dto.Quantity)
	vm, err := h.service.SetQuantity(r.Context(), id, dto.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidQuantity):
			mLogger.WarnContext(r.Context(), "Rejected non-positive quantity", "ID", id, "quantity", dto.Quantity)
			web.RespondError(w, mLogger, http.StatusBadRequest, "Quantity must be positive")
		case errors.Is(err, cart.ErrLineNotFound):
			mLogger.WarnContext(r.Context(), "Cart line not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("No cart line for product ID %d", id))
		default:
			mLogger.ErrorContext(r.Context(), "Error setting quantity", "ID", id, "error", err)
			web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to set quantity")
		}
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, vm)
}

// AdjustQuantity applies a relative quantity change to a cart line.
func (h *Handler) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var dto AdjustQuantityDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !h.validateBody(w, r, mLogger, dto) {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to adjust quantity", "ID", id, "delta", dto.Delta)
	web.RespondJSON(w, mLogger, http.StatusOK, h.service.AdjustQuantity(r.Context(), id, dto.Delta))
}

// RemoveItem deletes the cart line for the given product.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to remove item", "ID", id)
	web.RespondJSON(w, mLogger, http.StatusOK, h.service.RemoveItem(r.Context(), id))
}

// SelectCurrency sets the display currency for the session.
func (h *Handler) SelectCurrency(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto SelectCurrencyDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !h.validateBody(w, r, mLogger, dto) {
		return
	}

	mLogger.InfoContext(r.Context(), "Currency selected", "code", dto.Code)
	web.RespondJSON(w, mLogger, http.StatusOK, h.service.SelectCurrency(r.Context(), dto.Code))
}

// Checkout produces the checkout message for the current cart.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	result := h.service.Checkout(r.Context())
	mLogger.InfoContext(r.Context(), "Checkout requested", "message", result.Message)
	web.RespondJSON(w, mLogger, http.StatusOK, result)
}

// HealthCheck responds with a simple status message.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]string{"status": "ok"})
}

// validateBody validates a decoded request body and writes field-specific
// errors on failure. Returns false if the request was rejected.
func (h *Handler) validateBody(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, dto any) bool {
	if err := h.validate.Struct(dto); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			// If the error is a validation error, we can extract field-specific errors.
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				// fieldErr.Tag() returns "required", "len", etc.
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, mLogger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return false
		}
		mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		// If it's not a validation error, we can return a generic error.
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID, _ := web.GetRequestID(r.Context())
	return h.logger.With("request_id", reqID)
}
