package repository

import (
	"context"
	"fmt"

	"cuisinecraft-hub/internal/config"
	"cuisinecraft-hub/internal/database"

	"github.com/rs/zerolog"
)

// Open connects to the configured storage driver, bootstraps its schema and returns
// the store with a function releasing the connection.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Store, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialise database: %w", err)
		}

		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}

		return NewPostgresStore(pool, logger), pool.Close, nil

	case config.DriverMongo:
		client, err := database.NewMongoClient(ctx, cfg.Mongo, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialise document store: %w", err)
		}

		db := client.Database(cfg.Mongo.Database)
		if err := database.EnsureMongoIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("failed to create indexes: %w", err)
		}

		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Error().Err(err).Msg("failed to disconnect from document store")
			}
		}
		return NewMongoStore(db, logger), closeFn, nil

	default:
		return nil, nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}
