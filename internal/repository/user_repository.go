package repository

import (
	"context"
	"errors"
	"fmt"

	"cuisinecraft-hub/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// userRepository implements the UserRepository interface using PostgreSQL.
type userRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewUserRepository creates a new PostgreSQL-backed user repository.
func NewUserRepository(pool *pgxpool.Pool, logger zerolog.Logger) UserRepository {
	return &userRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(&u.ID, &u.Email, &u.Username, &u.Role)
}

// List retrieves every registered user.
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, email, username, COALESCE(role, '')
		FROM users
		ORDER BY created_at
	`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query users")
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	return collectRows(rows, scanUser)
}

// GetByEmail retrieves a user by email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := scanUser(r.pool.QueryRow(ctx, `
		SELECT id::text, email, username, COALESCE(role, '')
		FROM users
		WHERE email = $1
	`, email), &u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &u, nil
}

// IsAdmin reports whether the email belongs to an admin.
func (r *userRepository) IsAdmin(ctx context.Context, email string) (bool, error) {
	var admin bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND role = $2)`,
		email, model.RoleAdmin,
	).Scan(&admin)
	if err != nil {
		r.logger.Error().Err(err).Str("email", email).Msg("failed to look up admin role")
		return false, fmt.Errorf("failed to look up admin role: %w", err)
	}

	return admin, nil
}

// CreateIfAbsent inserts the user unless the email is taken. The unique constraint on
// email decides concurrent registrations.
func (r *userRepository) CreateIfAbsent(ctx context.Context, user *model.User) (bool, error) {
	query := `
		INSERT INTO users (id, email, username)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING
	`

	id := uuid.New()
	tag, err := r.pool.Exec(ctx, query, id, user.Email, user.Username)
	if err != nil {
		r.logger.Error().Err(err).Str("email", user.Email).Msg("failed to create user")
		return false, fmt.Errorf("failed to create user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return false, nil
	}

	user.ID = id.String()
	r.logger.Info().Str("user_id", user.ID).Msg("user registered")

	return true, nil
}

// PromoteToAdmin grants the admin role.
func (r *userRepository) PromoteToAdmin(ctx context.Context, id string) (*model.UpdateResult, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	query := `
		WITH target AS (
			SELECT id, role IS DISTINCT FROM $2 AS changes FROM users WHERE id = $1
		), updated AS (
			UPDATE users SET role = $2
			WHERE id IN (SELECT id FROM target WHERE changes)
			RETURNING id
		)
		SELECT (SELECT COUNT(*) FROM target), (SELECT COUNT(*) FROM updated)
	`

	var res model.UpdateResult
	if err := r.pool.QueryRow(ctx, query, key, model.RoleAdmin).Scan(&res.MatchedCount, &res.ModifiedCount); err != nil {
		r.logger.Error().Err(err).Str("user_id", id).Msg("failed to promote user")
		return nil, fmt.Errorf("failed to promote user: %w", err)
	}
	res.Acknowledged = true

	return &res, nil
}

// Delete removes a user.
func (r *userRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, key)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", id).Msg("failed to delete user")
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	return &model.DeleteResult{Acknowledged: true, DeletedCount: tag.RowsAffected()}, nil
}

// Count returns the number of users.
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.pool, "users")
}
