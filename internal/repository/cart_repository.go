package repository

import (
	"context"
	"fmt"
	"time"

	"cuisinecraft-hub/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// ListByEmail retrieves the cart of one customer, oldest entry first.
func (r *cartRepository) ListByEmail(ctx context.Context, email string) ([]model.CartItem, error) {
	query := `
		SELECT id::text, email, menu_item_id, name, image, price::float8, created_at
		FROM cart_items
		WHERE email = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query cart")
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}

	return collectRows(rows, func(row pgx.Row, v *model.CartItem) error {
		return row.Scan(&v.ID, &v.Email, &v.MenuItemID, &v.Name, &v.Image, &v.Price, &v.CreatedAt)
	})
}

// Add inserts a cart entry.
func (r *cartRepository) Add(ctx context.Context, item *model.CartItem) (*model.InsertResult, error) {
	query := `
		INSERT INTO cart_items (id, email, menu_item_id, name, image, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	id := uuid.New()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	_, err := r.pool.Exec(ctx, query, id, item.Email, item.MenuItemID, item.Name, item.Image, item.Price, item.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("email", item.Email).Msg("failed to add cart item")
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	r.logger.Debug().
		Str("cart_item_id", id.String()).
		Str("menu_item_id", item.MenuItemID).
		Msg("cart item added")

	return inserted(id), nil
}

// Delete removes a single cart entry.
func (r *cartRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, key)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_item_id", id).Msg("failed to delete cart item")
		return nil, fmt.Errorf("failed to delete cart item: %w", err)
	}

	return &model.DeleteResult{Acknowledged: true, DeletedCount: tag.RowsAffected()}, nil
}
