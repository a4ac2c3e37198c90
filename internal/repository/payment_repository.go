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

// paymentRepository implements the PaymentRepository interface using PostgreSQL.
type paymentRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPaymentRepository creates a new PostgreSQL-backed payment repository.
func NewPaymentRepository(pool *pgxpool.Pool, logger zerolog.Logger) PaymentRepository {
	return &paymentRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "payment").Logger(),
	}
}

// ListByEmail retrieves the payment history of one customer, newest first.
func (r *paymentRepository) ListByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	query := `
		SELECT id::text, email, price::float8, transaction_id, paid_at, cart_ids, menu_item_ids, status
		FROM payments
		WHERE email = $1
		ORDER BY paid_at DESC
	`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query payments")
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}

	return collectRows(rows, func(row pgx.Row, p *model.Payment) error {
		return row.Scan(&p.ID, &p.Email, &p.Price, &p.TransactionID, &p.Date, &p.CartIDs, &p.MenuItemIDs, &p.Status)
	})
}

// Checkout inserts the payment and clears the payer's cart in one transaction.
func (r *paymentRepository) Checkout(ctx context.Context, payment *model.Payment) (*model.CheckoutResult, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				r.logger.Error().Err(rbErr).Msg("failed to rollback checkout")
			}
		}
	}()

	id := uuid.New()
	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO payments (id, email, price, transaction_id, menu_item_ids, cart_ids, status, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		id,
		payment.Email,
		payment.Price,
		payment.TransactionID,
		nonNil(payment.MenuItemIDs),
		nonNil(payment.CartIDs),
		payment.Status,
		payment.Date,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("email", payment.Email).Msg("failed to insert payment")
		err = fmt.Errorf("failed to insert payment: %w", err)
		return nil, err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE email = $1`, payment.Email)
	if err != nil {
		r.logger.Error().Err(err).Str("email", payment.Email).Msg("failed to clear cart")
		err = fmt.Errorf("failed to clear cart: %w", err)
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit checkout")
		err = fmt.Errorf("failed to commit checkout: %w", err)
		return nil, err
	}

	payment.ID = id.String()
	r.logger.Info().
		Str("payment_id", payment.ID).
		Int64("cart_items_removed", tag.RowsAffected()).
		Msg("payment recorded")

	return &model.CheckoutResult{
		PaymentResult: *inserted(id),
		DeleteRes:     model.DeleteResult{Acknowledged: true, DeletedCount: tag.RowsAffected()},
	}, nil
}

// Count returns the number of payments.
func (r *paymentRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.pool, "payments")
}

// TotalRevenue sums the price of every payment.
func (r *paymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	if err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(price), 0)::float8 FROM payments`).Scan(&total); err != nil {
		r.logger.Error().Err(err).Msg("failed to sum revenue")
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return total, nil
}

// SoldStats expands each payment into its menu item ids and joins them against the
// menu. Ids are compared in canonical form, so case and surrounding blanks do not
// matter. Ids that are not a menu key, including malformed ones, find no row and drop out.
func (r *paymentRepository) SoldStats(ctx context.Context, email string) ([]model.CategoryStat, error) {
	query := `
		SELECT m.category, COUNT(*), COALESCE(SUM(m.price), 0)::float8
		FROM payments p
		CROSS JOIN LATERAL unnest(p.menu_item_ids) AS u(item_id)
		JOIN menu m ON m.id::text = lower(trim(u.item_id))
		WHERE ($1::text = '' OR p.email = $1)
		GROUP BY m.category
		ORDER BY m.category
	`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		r.logger.Error().Err(err).Str("email", email).Msg("failed to aggregate sold items")
		return nil, fmt.Errorf("failed to aggregate sold items: %w", err)
	}

	return collectRows(rows, func(row pgx.Row, s *model.CategoryStat) error {
		return row.Scan(&s.Category, &s.Quantity, &s.Revenue)
	})
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
