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

// menuRepository implements the MenuRepository interface using PostgreSQL.
type menuRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuRepository creates a new PostgreSQL-backed menu repository.
func NewMenuRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

func scanMenuItem(row pgx.Row, m *model.MenuItem) error {
	return row.Scan(&m.ID, &m.Name, &m.Recipe, &m.Image, &m.Category, &m.Price)
}

// List retrieves the whole menu.
func (r *menuRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	query := `
		SELECT id::text, name, recipe, image, category, price::float8
		FROM menu
		ORDER BY created_at, name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menu")
		return nil, fmt.Errorf("failed to query menu: %w", err)
	}

	items, err := collectRows(rows, scanMenuItem)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to read menu rows")
		return nil, err
	}

	return items, nil
}

// GetByIDs retrieves the menu items matching ids.
func (r *menuRepository) GetByIDs(ctx context.Context, ids []string) ([]model.MenuItem, error) {
	if len(ids) == 0 {
		return []model.MenuItem{}, nil
	}

	keys, err := parseIDs(ids)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id::text, name, recipe, image, category, price::float8
		FROM menu
		WHERE id = ANY($1)
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query, keys)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query menu items by IDs")
		return nil, fmt.Errorf("failed to query menu items by IDs: %w", err)
	}

	items, err := collectRows(rows, scanMenuItem)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to read menu rows")
		return nil, err
	}

	return items, nil
}

// Create inserts a new menu item.
func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) (*model.InsertResult, error) {
	query := `
		INSERT INTO menu (id, name, recipe, image, category, price)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	id := uuid.New()
	_, err := r.pool.Exec(ctx, query, id, item.Name, item.Recipe, item.Image, item.Category, item.Price)
	if err != nil {
		r.logger.Error().Err(err).Str("name", item.Name).Msg("failed to create menu item")
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	r.logger.Debug().Str("menu_item_id", id.String()).Msg("menu item created")

	return inserted(id), nil
}

// Update replaces the editable fields of a menu item.
func (r *menuRepository) Update(ctx context.Context, id string, item *model.MenuItem) (*model.UpdateResult, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE menu
		SET name = $2, recipe = $3, image = $4, category = $5, price = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, key, item.Name, item.Recipe, item.Image, item.Category, item.Price)
	if err != nil {
		r.logger.Error().Err(err).Str("menu_item_id", id).Msg("failed to update menu item")
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}

	return &model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  tag.RowsAffected(),
		ModifiedCount: tag.RowsAffected(),
	}, nil
}

// Delete removes a menu item.
func (r *menuRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM menu WHERE id = $1`, key)
	if err != nil {
		r.logger.Error().Err(err).Str("menu_item_id", id).Msg("failed to delete menu item")
		return nil, fmt.Errorf("failed to delete menu item: %w", err)
	}

	return &model.DeleteResult{Acknowledged: true, DeletedCount: tag.RowsAffected()}, nil
}

// Count returns the number of menu items.
func (r *menuRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.pool, "menu")
}
