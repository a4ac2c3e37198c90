package handler

import (
	"net/http"

	"cuisinecraft-hub/internal/model"
	"cuisinecraft-hub/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const msgCartItemAdded = "data inserted successfully"

// CartHandler handles cart-related HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// List handles GET /cartList?email=.
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(w, r, err, "failed to list cart", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Add handles POST /addToCart.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var item model.CartItem
	if !decodeJSON(w, r, &item, h.logger) {
		return
	}

	if _, err := h.service.Add(r.Context(), &item); err != nil {
		writeServiceError(w, r, err, "failed to add to cart", h.logger)
		return
	}

	writeMessage(w, http.StatusOK, msgCartItemAdded)
}

// Remove handles DELETE /deleteCartItem/{id}.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Remove(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "failed to remove cart item", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, res)
}
