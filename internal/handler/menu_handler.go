package handler

import (
	"net/http"

	"cuisinecraft-hub/internal/model"
	"cuisinecraft-hub/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// MenuHandler handles menu-related HTTP requests.
type MenuHandler struct {
	service service.MenuService
	logger  zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(service service.MenuService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger.With().Str("handler", "menu").Logger(),
	}
}

// List handles GET /menu.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to list menu", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// PurchaseDetails handles GET /paymentHistoryPurchaseDetails?items=id1,id2.
func (h *MenuHandler) PurchaseDetails(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.PurchaseDetails(r.Context(), r.URL.Query().Get("items"))
	if err != nil {
		writeServiceError(w, r, err, "failed to resolve purchase details", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Create handles POST /addItem.
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item model.MenuItem
	if !decodeJSON(w, r, &item, h.logger) {
		return
	}

	res, err := h.service.Create(r.Context(), &item)
	if err != nil {
		writeServiceError(w, r, err, "failed to create menu item", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// Update handles PATCH /updateItem/{id}.
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	var item model.MenuItem
	if !decodeJSON(w, r, &item, h.logger) {
		return
	}

	res, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &item)
	if err != nil {
		writeServiceError(w, r, err, "failed to update menu item", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// Delete handles DELETE /deleteItem/{id}.
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "failed to delete menu item", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, res)
}
