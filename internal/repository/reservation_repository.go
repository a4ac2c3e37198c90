package repository

import (
	"context"
	"fmt"

	"cuisinecraft-hub/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// reservationRepository implements the ReservationRepository interface using PostgreSQL.
type reservationRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReservationRepository creates a new PostgreSQL-backed reservation repository.
func NewReservationRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReservationRepository {
	return &reservationRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "reservation").Logger(),
	}
}

const reservationColumns = `id::text, user_email, user_name, phone, date, time, guests, status`

func scanReservation(row pgx.Row, v *model.Reservation) error {
	d := &v.ReservationData
	return row.Scan(&v.ID, &d.UserEmail, &d.UserName, &d.Phone, &d.Date, &d.Time, &d.Guests, &d.Status)
}

// List retrieves every reservation.
func (r *reservationRepository) List(ctx context.Context) ([]model.Reservation, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+reservationColumns+` FROM reservations ORDER BY created_at`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query reservations")
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}

	return collectRows(rows, scanReservation)
}

// ListByEmail retrieves the reservations of one guest.
func (r *reservationRepository) ListByEmail(ctx context.Context, email string) ([]model.Reservation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE user_email = $1 ORDER BY created_at`,
		email,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query reservations")
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}

	return collectRows(rows, scanReservation)
}

// Create inserts a reservation.
func (r *reservationRepository) Create(ctx context.Context, res *model.Reservation) (*model.InsertResult, error) {
	query := `
		INSERT INTO reservations (id, user_email, user_name, phone, date, time, guests, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	id := uuid.New()
	d := res.ReservationData
	_, err := r.pool.Exec(ctx, query, id, d.UserEmail, d.UserName, d.Phone, d.Date, d.Time, d.Guests, d.Status)
	if err != nil {
		r.logger.Error().Err(err).Str("email", d.UserEmail).Msg("failed to create reservation")
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	return inserted(id), nil
}

// Confirm moves a reservation to confirmed, reporting matched and modified rows separately.
func (r *reservationRepository) Confirm(ctx context.Context, id string) (*model.UpdateResult, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	query := `
		WITH target AS (
			SELECT id, status <> $2 AS changes FROM reservations WHERE id = $1
		), updated AS (
			UPDATE reservations SET status = $2
			WHERE id IN (SELECT id FROM target WHERE changes)
			RETURNING id
		)
		SELECT (SELECT COUNT(*) FROM target), (SELECT COUNT(*) FROM updated)
	`

	var res model.UpdateResult
	if err := r.pool.QueryRow(ctx, query, key, model.ReservationConfirmed).Scan(&res.MatchedCount, &res.ModifiedCount); err != nil {
		r.logger.Error().Err(err).Str("reservation_id", id).Msg("failed to confirm reservation")
		return nil, fmt.Errorf("failed to confirm reservation: %w", err)
	}
	res.Acknowledged = true

	return &res, nil
}

// Delete removes a reservation.
func (r *reservationRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, key)
	if err != nil {
		r.logger.Error().Err(err).Str("reservation_id", id).Msg("failed to delete reservation")
		return nil, fmt.Errorf("failed to delete reservation: %w", err)
	}

	return &model.DeleteResult{Acknowledged: true, DeletedCount: tag.RowsAffected()}, nil
}
