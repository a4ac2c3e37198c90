package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresSchema mirrors the document shapes of the collections. Payments keep menu item ids
// as text so that references to deleted or malformed items survive and simply fail to join.
const postgresSchema = `
	CREATE TABLE IF NOT EXISTS menu (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		recipe TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		category VARCHAR(100) NOT NULL,
		price DECIMAL(10, 2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS chef_recommendations (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		recipe TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		category VARCHAR(100) NOT NULL DEFAULT '',
		price DECIMAL(10, 2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS reviews (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		details TEXT NOT NULL DEFAULT '',
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS contact_messages (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL DEFAULT '',
		phone VARCHAR(64) NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		username VARCHAR(255) NOT NULL DEFAULT '',
		role VARCHAR(32),
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS cart_items (
		id UUID PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		menu_item_id VARCHAR(64) NOT NULL DEFAULT '',
		name VARCHAR(255) NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		price DECIMAL(10, 2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		price DECIMAL(10, 2) NOT NULL,
		transaction_id VARCHAR(255) NOT NULL DEFAULT '',
		menu_item_ids TEXT[] NOT NULL DEFAULT '{}',
		cart_ids TEXT[] NOT NULL DEFAULT '{}',
		status VARCHAR(32) NOT NULL DEFAULT '',
		paid_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS reservations (
		id UUID PRIMARY KEY,
		user_email VARCHAR(255) NOT NULL DEFAULT '',
		user_name VARCHAR(255) NOT NULL DEFAULT '',
		phone VARCHAR(64) NOT NULL DEFAULT '',
		date VARCHAR(32) NOT NULL DEFAULT '',
		time VARCHAR(32) NOT NULL DEFAULT '',
		guests INTEGER NOT NULL DEFAULT 0,
		status VARCHAR(32) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_cart_items_email ON cart_items(email);
	CREATE INDEX IF NOT EXISTS idx_payments_email ON payments(email);
	CREATE INDEX IF NOT EXISTS idx_reservations_user_email ON reservations(user_email);
`

// Migrate creates the tables the postgres store needs. It is safe to run on every start.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
