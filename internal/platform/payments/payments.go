package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// ErrProcessor wraps every failure reported by the payment processor.
var ErrProcessor = errors.New("payment processor error")

// Intent is the processor's record of a pending payment.
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

// IntentCreator creates payment intents. Amount is in the currency's minor units.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error)
}

// PaymentMethodTypes are the payment methods offered on every intent.
var PaymentMethodTypes = []string{"card"}

// StripeProcessor implements IntentCreator with the Stripe API.
type StripeProcessor struct {
	api *client.API
}

// NewStripeProcessor creates a processor authenticated with secretKey.
// A nil backends value uses Stripe's default endpoints.
func NewStripeProcessor(secretKey string, backends *stripe.Backends) *StripeProcessor {
	return &StripeProcessor{api: client.New(secretKey, backends)}
}

var _ IntentCreator = (*StripeProcessor)(nil)

// CreateIntent implements IntentCreator.CreateIntent
func (p *StripeProcessor) CreateIntent(
	ctx context.Context,
	amount int64,
	currency string,
) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice(PaymentMethodTypes),
	}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return nil, fmt.Errorf("%w: %s (%s)", ErrProcessor, stripeErr.Msg, stripeErr.Type)
		}
		return nil, fmt.Errorf("%w: %v", ErrProcessor, err)
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}
