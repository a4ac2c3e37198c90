package handler

import (
	"errors"
	"net/http"

	"cuisinecraft-hub/internal/model"
	"cuisinecraft-hub/internal/service"

	"github.com/rs/zerolog"
)

// CaptchaResponse is the body of POST /verifyRecaptcha.
type CaptchaResponse struct {
	Success bool `json:"success"`
}

type captchaRequest struct {
	RecaptchaValue string `json:"recaptchaValue"`
}

// CaptchaHandler relays reCAPTCHA widget responses for verification.
type CaptchaHandler struct {
	service service.CaptchaService
	logger  zerolog.Logger
}

func NewCaptchaHandler(service service.CaptchaService, logger zerolog.Logger) *CaptchaHandler {
	return &CaptchaHandler{
		service: service,
		logger:  logger.With().Str("handler", "captcha").Logger(),
	}
}

// Verify handles POST /verifyRecaptcha. A rejected response answers 400 and an
// unreachable verifier 500.
func (h *CaptchaHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req captchaRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	ok, err := h.service.Verify(r.Context(), req.RecaptchaValue)
	switch {
	case errors.Is(err, model.ErrRecaptchaEmpty):
		writeJSON(w, http.StatusBadRequest, CaptchaResponse{Success: false})
	case err != nil:
		h.logger.Error().Err(err).Msg("recaptcha verification failed upstream")
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeUpstreamFailure, msgInternalError, h.logger)
	case !ok:
		writeJSON(w, http.StatusBadRequest, CaptchaResponse{Success: false})
	default:
		writeJSON(w, http.StatusOK, CaptchaResponse{Success: true})
	}
}
