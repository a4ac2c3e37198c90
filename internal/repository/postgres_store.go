package repository

import (
	"context"
	"fmt"
	"strings"

	"cuisinecraft-hub/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// NewPostgresStore wires every repository to a shared PostgreSQL pool.
func NewPostgresStore(pool *pgxpool.Pool, logger zerolog.Logger) *Store {
	return &Store{
		Menu:            NewMenuRepository(pool, logger),
		Reviews:         NewReviewRepository(pool, logger),
		Recommendations: NewRecommendationRepository(pool, logger),
		Contacts:        NewContactRepository(pool, logger),
		Cart:            NewCartRepository(pool, logger),
		Users:           NewUserRepository(pool, logger),
		Payments:        NewPaymentRepository(pool, logger),
		Reservations:    NewReservationRepository(pool, logger),
		ping:            pool.Ping,
	}
}

// parseID converts a path or body id into a row key.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, model.ErrInvalidID
	}
	return parsed, nil
}

func parseIDs(ids []string) ([]uuid.UUID, error) {
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		p, err := parseID(id)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, p)
	}
	return parsed, nil
}

// collectRows drains rows into a non-nil slice so empty results encode as [].
func collectRows[T any](rows pgx.Rows, scan func(row pgx.Row, v *T) error) ([]T, error) {
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var v T
		if err := scan(rows, &v); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return out, nil
}

func countRows(ctx context.Context, pool *pgxpool.Pool, table string) (int64, error) {
	var n int64
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}

func inserted(id uuid.UUID) *model.InsertResult {
	return &model.InsertResult{Acknowledged: true, InsertedID: id.String()}
}
