// Package gateway holds the clients for the third-party services the API relays to.
package gateway

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// intentCreator is the part of the Stripe client used here.
type intentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// StripeGateway creates card payment intents.
type StripeGateway struct {
	intents intentCreator
	logger  zerolog.Logger
}

// NewStripeGateway creates a gateway authenticated with secretKey.
func NewStripeGateway(secretKey string, logger zerolog.Logger) *StripeGateway {
	sc := client.New(secretKey, nil)
	return newStripeGateway(sc.PaymentIntents, logger)
}

func newStripeGateway(intents intentCreator, logger zerolog.Logger) *StripeGateway {
	return &StripeGateway{
		intents: intents,
		logger:  logger.With().Str("component", "stripe").Logger(),
	}
}

// CreatePaymentIntent creates a card-only intent for amount minor units and returns its
// client secret.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := g.intents.New(params)
	if err != nil {
		g.logger.Error().Err(err).Int64("amount", amount).Msg("failed to create payment intent")
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	g.logger.Info().Str("payment_intent_id", pi.ID).Int64("amount", amount).Msg("payment intent created")

	return pi.ClientSecret, nil
}
