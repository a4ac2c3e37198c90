package handler

import (
	"net/http"

	"cuisinecraft-hub/internal/model"
	"cuisinecraft-hub/internal/service"

	"github.com/rs/zerolog"
)

// PaymentHandler handles payment intents, checkout and payment history.
type PaymentHandler struct {
	service service.PaymentService
	logger  zerolog.Logger
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(service service.PaymentService, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		logger:  logger.With().Str("handler", "payment").Logger(),
	}
}

// CreateIntent handles POST /create-payment-intent.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req model.PaymentIntentRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	secret, err := h.service.CreateIntent(r.Context(), req.Price)
	if err != nil {
		writeServiceError(w, r, err, "failed to create payment intent", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.PaymentIntentResponse{ClientSecret: secret})
}

// Checkout handles POST /payments. The payer's cart is emptied with the same commit.
func (h *PaymentHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var payment model.Payment
	if !decodeJSON(w, r, &payment, h.logger) {
		return
	}

	res, err := h.service.Checkout(r.Context(), &payment)
	if err != nil {
		writeServiceError(w, r, err, "failed to record payment", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// History handles GET /paymentHistory/{email}.
func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	email, ok := pathParam(w, r, "email", h.logger)
	if !ok {
		return
	}

	payments, err := h.service.History(r.Context(), email)
	if err != nil {
		writeServiceError(w, r, err, "failed to get payment history", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, payments)
}
