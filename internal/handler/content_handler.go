package handler

import (
	"net/http"

	"cuisinecraft-hub/internal/model"
	"cuisinecraft-hub/internal/service"

	"github.com/rs/zerolog"
)

// ContentHandler serves reviews, chef recommendations and contact messages.
type ContentHandler struct {
	service service.ContentService
	logger  zerolog.Logger
}

func NewContentHandler(service service.ContentService, logger zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		logger:  logger.With().Str("handler", "content").Logger(),
	}
}

func (h *ContentHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.Reviews(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to list reviews", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ContentHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.service.Recommendations(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to list chef recommendations", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (h *ContentHandler) ContactMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.service.ContactMessages(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to list contact messages", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

// CreateContactMessage handles POST /contactUs.
func (h *ContentHandler) CreateContactMessage(w http.ResponseWriter, r *http.Request) {
	var msg model.ContactMessage
	if !decodeJSON(w, r, &msg, h.logger) {
		return
	}

	res, err := h.service.CreateContactMessage(r.Context(), &msg)
	if err != nil {
		writeServiceError(w, r, err, "failed to store contact message", h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}
