package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/blissful-trails/trails-api/internal/platform/payments"
)

// IntentCall records the arguments of one CreateIntent call.
type IntentCall struct {
	Amount   int64
	Currency string
}

// MockIntentCreator implements payments.IntentCreator for testing.
// By default it returns an intent with a deterministic client secret.
type MockIntentCreator struct {
	CreateIntentFn func(ctx context.Context, amount int64, currency string) (*payments.Intent, error)
	Err            error

	mu    sync.Mutex
	Calls []IntentCall
}

var _ payments.IntentCreator = (*MockIntentCreator)(nil)

// CreateIntent implements the payments.IntentCreator interface
func (m *MockIntentCreator) CreateIntent(
	ctx context.Context,
	amount int64,
	currency string,
) (*payments.Intent, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, IntentCall{Amount: amount, Currency: currency})
	n := len(m.Calls)
	m.mu.Unlock()

	if m.CreateIntentFn != nil {
		return m.CreateIntentFn(ctx, amount, currency)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	id := fmt.Sprintf("pi_mock%d", n)
	return &payments.Intent{
		ID:           id,
		ClientSecret: id + "_secret_mock",
		Amount:       amount,
		Currency:     currency,
	}, nil
}

// LastCall returns the most recent call, or false when there was none.
func (m *MockIntentCreator) LastCall() (IntentCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return IntentCall{}, false
	}
	return m.Calls[len(m.Calls)-1], true
}
