package service

import (
	"context"
	"fmt"
	"strings"

	"cuisinecraft-hub/internal/model"
	"cuisinecraft-hub/internal/repository"

	"github.com/rs/zerolog"
)

type reservationService struct {
	reservationRepo repository.ReservationRepository
	logger          zerolog.Logger
}

// NewReservationService creates a new reservation service.
func NewReservationService(reservationRepo repository.ReservationRepository, logger zerolog.Logger) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		logger:          logger.With().Str("service", "reservation").Logger(),
	}
}

func (s *reservationService) List(ctx context.Context) ([]model.Reservation, error) {
	res, err := s.reservationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}
	return res, nil
}

func (s *reservationService) ListByEmail(ctx context.Context, email string) ([]model.Reservation, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, model.ErrEmailRequired
	}

	res, err := s.reservationRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}
	return res, nil
}

// Create books a table. New bookings always start pending whatever the client sent.
func (s *reservationService) Create(ctx context.Context, r *model.Reservation) (*model.InsertResult, error) {
	if r == nil {
		return nil, model.ErrInvalidInput
	}
	if strings.TrimSpace(r.ReservationData.UserEmail) == "" {
		return nil, model.ErrEmailRequired
	}
	if r.ReservationData.Guests < 0 {
		return nil, model.ErrInvalidInput
	}

	r.ReservationData.Status = model.ReservationPending

	res, err := s.reservationRepo.Create(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.logger.Info().
		Str("reservation_id", res.InsertedID).
		Str("date", r.ReservationData.Date).
		Int("guests", r.ReservationData.Guests).
		Msg("reservation created")

	return res, nil
}

func (s *reservationService) Confirm(ctx context.Context, id string) (*model.UpdateResult, error) {
	res, err := s.reservationRepo.Confirm(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm reservation: %w", err)
	}

	s.logger.Info().
		Str("reservation_id", id).
		Int64("matched", res.MatchedCount).
		Int64("modified", res.ModifiedCount).
		Msg("reservation confirmation processed")

	return res, nil
}

func (s *reservationService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	res, err := s.reservationRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete reservation: %w", err)
	}
	return res, nil
}
