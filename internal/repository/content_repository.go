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

type reviewRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReviewRepository {
	return &reviewRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "review").Logger(),
	}
}

func (r *reviewRepository) List(ctx context.Context) ([]model.Review, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, name, details, rating
		FROM reviews
		ORDER BY created_at
	`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query reviews")
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}

	return collectRows(rows, func(row pgx.Row, v *model.Review) error {
		return row.Scan(&v.ID, &v.Name, &v.Details, &v.Rating)
	})
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) (*model.InsertResult, error) {
	id := uuid.New()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO reviews (id, name, details, rating) VALUES ($1, $2, $3, $4)`,
		id, review.Name, review.Details, review.Rating,
	)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to create review")
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return inserted(id), nil
}

type recommendationRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewRecommendationRepository creates a new PostgreSQL-backed chef recommendation repository.
func NewRecommendationRepository(pool *pgxpool.Pool, logger zerolog.Logger) RecommendationRepository {
	return &recommendationRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "chef_recommendation").Logger(),
	}
}

func (r *recommendationRepository) List(ctx context.Context) ([]model.Recommendation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, name, recipe, image, category, price::float8
		FROM chef_recommendations
		ORDER BY created_at
	`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query chef recommendations")
		return nil, fmt.Errorf("failed to query chef recommendations: %w", err)
	}

	return collectRows(rows, func(row pgx.Row, v *model.Recommendation) error {
		return row.Scan(&v.ID, &v.Name, &v.Recipe, &v.Image, &v.Category, &v.Price)
	})
}

func (r *recommendationRepository) Create(ctx context.Context, rec *model.Recommendation) (*model.InsertResult, error) {
	id := uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO chef_recommendations (id, name, recipe, image, category, price)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, rec.Name, rec.Recipe, rec.Image, rec.Category, rec.Price)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to create chef recommendation")
		return nil, fmt.Errorf("failed to create chef recommendation: %w", err)
	}
	return inserted(id), nil
}

type contactRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewContactRepository creates a new PostgreSQL-backed contact message repository.
func NewContactRepository(pool *pgxpool.Pool, logger zerolog.Logger) ContactRepository {
	return &contactRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "contact").Logger(),
	}
}

func (r *contactRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, name, email, phone, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query contact messages")
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}

	return collectRows(rows, func(row pgx.Row, v *model.ContactMessage) error {
		return row.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.Message, &v.CreatedAt)
	})
}

func (r *contactRepository) Create(ctx context.Context, msg *model.ContactMessage) (*model.InsertResult, error) {
	id := uuid.New()
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO contact_messages (id, name, email, phone, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, msg.Name, msg.Email, msg.Phone, msg.Message, msg.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("email", msg.Email).Msg("failed to create contact message")
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}
	return inserted(id), nil
}
