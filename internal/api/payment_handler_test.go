package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blissful-trails/trails-api/internal/mocks"
	"github.com/blissful-trails/trails-api/internal/platform/payments"
	"github.com/blissful-trails/trails-api/internal/service"
)

func TestPaymentHandler_CreateIntent(t *testing.T) {
	tests := []struct {
		name         string
		body         interface{}
		processorErr error
		wantStatus   int
		wantAmount   int64
	}{
		{name: "fractional price", body: map[string]any{"price": 19.99}, wantStatus: http.StatusOK, wantAmount: 1999},
		{name: "whole price", body: map[string]any{"price": 250}, wantStatus: http.StatusOK, wantAmount: 25000},
		{name: "zero price", body: map[string]any{"price": 0}, wantStatus: http.StatusBadRequest},
		{name: "negative price", body: map[string]any{"price": -3}, wantStatus: http.StatusBadRequest},
		{name: "price as text", body: `{"price":"19.99"}`, wantStatus: http.StatusBadRequest},
		{
			name:         "processor declines",
			body:         map[string]any{"price": 10},
			processorErr: errors.Join(payments.ErrProcessor, errors.New("api_key_expired")),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processor := &mocks.MockIntentCreator{Err: tt.processorErr}
			handler := NewPaymentHandler(service.NewPaymentService(processor, "usd", testLogger()), testLogger())

			rr := serve("/create-payment-intent", http.MethodPost, handler.CreateIntent,
				newJSONRequest(t, http.MethodPost, "/create-payment-intent", tt.body))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				if tt.processorErr != nil {
					assert.Equal(t, "Failed to create payment intent", decodeErrorResponse(t, rr).Message)
				}
				return
			}

			resp := decodeBody[PaymentIntentResponse](t, rr)
			assert.NotEmpty(t, resp.ClientSecret)

			call, ok := processor.LastCall()
			require.True(t, ok)
			assert.Equal(t, tt.wantAmount, call.Amount)
			assert.Equal(t, "usd", call.Currency)
		})
	}
}
