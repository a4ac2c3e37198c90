package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"cuisinecraft-hub/internal/middleware"
	"cuisinecraft-hub/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const msgInternalError = "internal server error"

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeMessage writes the {"message": ...} body the web client expects for status replies.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.MessageResponse{Message: message})
}

// writeError writes an error response tagged with the request's correlation id.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	requestID := middleware.RequestIDFromContext(r.Context())

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("code", code).Int("status", status).Str("request_id", requestID).Msg(message)

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: requestID,
	})
}

// writeServiceError maps domain errors to 400 replies. Anything else is logged
// with its cause and reported as a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, r, http.StatusBadRequest, domainErr.Code, domainErr.Message, logger)
		return
	}

	logger.Error().Err(err).Str("request_id", middleware.RequestIDFromContext(r.Context())).Msg(action)
	writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, msgInternalError, logger)
}

// decodeJSON decodes the request body into v and answers 400 when it cannot.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}, logger zerolog.Logger) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", logger)
		return false
	}
	return true
}

// pathParam returns the decoded value of a route parameter. chi hands back the raw
// segment when the request path carries escapes, so "a%40b.com" becomes "a@b.com" here.
func pathParam(w http.ResponseWriter, r *http.Request, key string, logger zerolog.Logger) (string, bool) {
	value, err := url.PathUnescape(chi.URLParam(r, key))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidInput, "malformed path parameter "+key, logger)
		return "", false
	}
	return value, true
}
