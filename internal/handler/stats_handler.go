package handler

import (
	"net/http"

	"cuisinecraft-hub/internal/service"

	"github.com/rs/zerolog"
)

// StatsHandler serves the dashboard reports.
type StatsHandler struct {
	service service.StatsService
	logger  zerolog.Logger
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(service service.StatsService, logger zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		logger:  logger.With().Str("handler", "stats").Logger(),
	}
}

// AdminStats handles GET /admin-stats.
func (h *StatsHandler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.AdminStats(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to build admin stats", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// SoldStats handles GET /sold-stats.
func (h *StatsHandler) SoldStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.SoldStats(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to build sold stats", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// UserSoldStats handles GET /userPaymentHistory?email=.
func (h *StatsHandler) UserSoldStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.UserSoldStats(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(w, r, err, "failed to build user sold stats", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
