package handler

import (
	"errors"
	"net/http"

	"cuisinecraft-hub/internal/model"
	"cuisinecraft-hub/internal/service"

	"github.com/rs/zerolog"
)

// ReservationHandler handles table bookings.
type ReservationHandler struct {
	service service.ReservationService
	logger  zerolog.Logger
}

// NewReservationHandler creates a new reservation handler.
func NewReservationHandler(service service.ReservationService, logger zerolog.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		logger:  logger.With().Str("handler", "reservation").Logger(),
	}
}

// List handles GET /allBookings.
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to list reservations", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ListByEmail handles GET /myBookings?email=.
func (h *ReservationHandler) ListByEmail(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ListByEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(w, r, err, "failed to list reservations", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Create handles POST /reservation.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var reservation model.Reservation
	if !decodeJSON(w, r, &reservation, h.logger) {
		return
	}

	res, err := h.service.Create(r.Context(), &reservation)
	if err != nil {
		writeServiceError(w, r, err, "failed to create reservation", h.logger)
		return
	}

	if res.InsertedID == "" {
		writeError(w, r, http.StatusForbidden, model.ErrCodeReservationFailed, "couldn't reserve", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// Confirm handles PATCH /confirmReservation. Nothing modified answers 403 with the
// update result as the body.
func (h *ReservationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req model.ConfirmReservationRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	if req.ItemID == "" {
		writeServiceError(w, r, model.ErrInvalidID, "confirmation without id", h.logger)
		return
	}

	res, err := h.service.Confirm(r.Context(), req.ItemID)
	if err != nil {
		writeServiceError(w, r, err, "failed to confirm reservation", h.logger)
		return
	}

	if res.ModifiedCount == 0 {
		h.logger.Warn().Str("reservation_id", req.ItemID).Msg("reservation is not pending")
		writeJSON(w, http.StatusForbidden, res)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// Delete handles DELETE /deleteReservation?_id=. A missing or unknown id answers 405.
func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("_id")
	if id == "" {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "reservation id is required", h.logger)
		return
	}

	res, err := h.service.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrInvalidID) {
			writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "reservation not found", h.logger)
			return
		}
		writeServiceError(w, r, err, "failed to delete reservation", h.logger)
		return
	}

	if res.DeletedCount == 0 {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "reservation not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, res)
}
