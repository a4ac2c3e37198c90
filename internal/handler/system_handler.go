package handler

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
)

const msgServerRunning = "server is running!!"

// Pinger reports whether the datastore is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// SystemHandler serves liveness and health probes.
type SystemHandler struct {
	store  Pinger
	logger zerolog.Logger
}

func NewSystemHandler(store Pinger, logger zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		store:  store,
		logger: logger.With().Str("handler", "system").Logger(),
	}
}

// Root handles GET /.
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(msgServerRunning))
}

// Health handles GET /health.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("datastore ping failed")
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
