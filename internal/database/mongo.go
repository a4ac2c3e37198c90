package database

import (
	"context"
	"fmt"
	"time"

	"cuisinecraft-hub/internal/config"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongoClient connects to the document store using the stable server API.
func NewMongoClient(ctx context.Context, cfg config.MongoConfig, logger zerolog.Logger) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(10 * time.Second)

	logger.Info().Str("database", cfg.Database).Msg("connecting to document store")

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logger.Info().Msg("document store connection established")

	return client, nil
}

// EnsureMongoIndexes creates the indexes the mongo store relies on. The unique email index
// makes user registration idempotent under concurrent requests.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{"user", mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{"cart", mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}}},
		{"payments", mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}}},
		{"reservation", mongo.IndexModel{Keys: bson.D{{Key: "reservationData.userEmail", Value: 1}}}},
	}

	for _, idx := range indexes {
		if _, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", idx.collection, err)
		}
	}

	return nil
}
