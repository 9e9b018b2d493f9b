package api

import (
	"log/slog"
	"net/http"

	"github.com/blissful-trails/trails-api/internal/api/shared"
	"github.com/blissful-trails/trails-api/internal/service"
)

// PaymentHandler handles payment intent requests.
type PaymentHandler struct {
	payments service.PaymentService
	logger   *slog.Logger
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(payments service.PaymentService, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		logger:   logger.With("handler", "payment"),
	}
}

// CreateIntent handles POST /create-payment-intent
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req PaymentIntentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	intent, err := h.payments.CreateIntent(r.Context(), req.Price)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create payment intent")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, PaymentIntentResponse{ClientSecret: intent.ClientSecret})
}
