package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

type mockIntents struct {
	mock.Mock
}

func (m *mockIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.PaymentIntent), args.Error(1)
}

func TestStripeGateway_CreatePaymentIntent(t *testing.T) {
	ctx := context.Background()

	intents := new(mockIntents)
	intents.On("New", mock.MatchedBy(func(p *stripe.PaymentIntentParams) bool {
		return *p.Amount == 1250 &&
			*p.Currency == "usd" &&
			len(p.PaymentMethodTypes) == 1 &&
			*p.PaymentMethodTypes[0] == "card" &&
			p.Context == ctx
	})).Return(&stripe.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret_x"}, nil)

	g := newStripeGateway(intents, zerolog.Nop())

	secret, err := g.CreatePaymentIntent(ctx, 1250, "usd")

	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret_x", secret)
	intents.AssertExpectations(t)
}

func TestStripeGateway_CreatePaymentIntent_Error(t *testing.T) {
	intents := new(mockIntents)
	intents.On("New", mock.Anything).Return(nil, errors.New("card_declined"))

	g := newStripeGateway(intents, zerolog.Nop())

	secret, err := g.CreatePaymentIntent(context.Background(), 100, "usd")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "card_declined")
	assert.Empty(t, secret)
}
