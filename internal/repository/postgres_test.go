package repository

import (
	"context"
	"testing"
	"time"

	"cuisinecraft-hub/internal/database"
	"cuisinecraft-hub/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer with the application schema applied.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	if testing.Short() {
		t.Skip("skipping container-backed repository test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, pool))

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// seedMenu inserts menu items through the repository and returns their ids in order.
func seedMenu(t *testing.T, repo MenuRepository, items []model.MenuItem) []string {
	ids := make([]string, 0, len(items))
	for i := range items {
		res, err := repo.Create(context.Background(), &items[i])
		require.NoError(t, err)
		ids = append(ids, res.InsertedID)
	}
	return ids
}

func newTestStore(t *testing.T) (*Store, func()) {
	pool, cleanup := setupTestDB(t)
	return NewPostgresStore(pool, zerolog.Nop()), cleanup
}
