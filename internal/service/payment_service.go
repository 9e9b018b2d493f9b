package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/blissful-trails/trails-api/internal/domain"
	"github.com/blissful-trails/trails-api/internal/platform/payments"
	"github.com/blissful-trails/trails-api/internal/redact"
)

// PaymentService creates payment intents for tour prices.
type PaymentService interface {
	// CreateIntent asks the processor for an intent covering price, given in
	// major currency units.
	CreateIntent(ctx context.Context, price float64) (*payments.Intent, error)
}

type paymentService struct {
	processor payments.IntentCreator
	currency  string
	logger    *slog.Logger
}

// NewPaymentService creates a PaymentService charging in currency.
func NewPaymentService(processor payments.IntentCreator, currency string, logger *slog.Logger) PaymentService {
	return &paymentService{
		processor: processor,
		currency:  currency,
		logger:    logger.With("component", "payment_service"),
	}
}

// AmountInMinorUnits converts a positive price to minor units, rounding to
// the nearest unit so 19.99 becomes 1999.
func AmountInMinorUnits(price float64) (int64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, domain.NewValidationError("price", "must be a positive number", domain.ErrInvalidPrice)
	}
	amount := math.Round(price * 100)
	if amount < 1 || amount > math.MaxInt64/2 {
		return 0, domain.NewValidationError("price", "is out of range", domain.ErrInvalidPrice)
	}
	return int64(amount), nil
}

func (s *paymentService) CreateIntent(ctx context.Context, price float64) (*payments.Intent, error) {
	amount, err := AmountInMinorUnits(price)
	if err != nil {
		return nil, err
	}

	intent, err := s.processor.CreateIntent(ctx, amount, s.currency)
	if err != nil {
		s.logger.Error("payment intent creation failed",
			"error", redact.Error(err),
			"amount", amount,
			"currency", s.currency)
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.logger.Info("payment intent created",
		"intent_id", intent.ID,
		"amount", amount,
		"currency", s.currency)
	return intent, nil
}
