package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"cuisinecraft-hub/internal/model"
	"cuisinecraft-hub/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var minorUnitsPerMajor = decimal.NewFromInt(100)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	gateway     PaymentGateway
	currency    string
	now         func() time.Time
	logger      zerolog.Logger
}

// NewPaymentService creates a new payment service charging in currency.
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	gateway PaymentGateway,
	currency string,
	logger zerolog.Logger,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		gateway:     gateway,
		currency:    currency,
		now:         time.Now,
		logger:      logger.With().Str("service", "payment").Logger(),
	}
}

// CreateIntent converts price to minor units, rounding half away from zero.
func (s *paymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount, err := toMinorUnits(price)
	if err != nil {
		s.logger.Debug().Float64("price", price).Msg("rejected payment intent")
		return "", err
	}

	secret, err := s.gateway.CreatePaymentIntent(ctx, amount, s.currency)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	return secret, nil
}

// Checkout records the payment and clears the payer's cart atomically.
func (s *paymentService) Checkout(ctx context.Context, payment *model.Payment) (*model.CheckoutResult, error) {
	if payment == nil {
		return nil, model.ErrInvalidInput
	}

	payment.Email = strings.TrimSpace(payment.Email)
	if payment.Email == "" {
		return nil, model.ErrEmailRequired
	}

	if payment.Price < 0 || math.IsNaN(payment.Price) || math.IsInf(payment.Price, 0) {
		return nil, model.ErrInvalidPrice
	}

	if payment.Date.IsZero() {
		payment.Date = s.now().UTC()
	}

	res, err := s.paymentRepo.Checkout(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.logger.Info().
		Str("payment_id", res.PaymentResult.InsertedID).
		Float64("price", payment.Price).
		Int("items", len(payment.MenuItemIDs)).
		Int64("cart_cleared", res.DeleteRes.DeletedCount).
		Msg("checkout completed")

	return res, nil
}

func (s *paymentService) History(ctx context.Context, email string) ([]model.Payment, error) {
	if strings.TrimSpace(email) == "" {
		return nil, model.ErrEmailRequired
	}

	payments, err := s.paymentRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment history: %w", err)
	}
	return payments, nil
}

func toMinorUnits(price float64) (int64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, model.ErrInvalidPrice
	}

	amount := decimal.NewFromFloat(price).Mul(minorUnitsPerMajor).Round(0)
	if !amount.IsPositive() {
		return 0, model.ErrInvalidPrice
	}

	return amount.IntPart(), nil
}
