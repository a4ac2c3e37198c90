package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cuisinecraft-hub/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const countsKey = "admin-stats:counts"

// RedisCountCache keeps the counts as one JSON value with a TTL.
type RedisCountCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisCountCache creates a count cache whose entries expire after ttl.
func NewRedisCountCache(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *RedisCountCache {
	return &RedisCountCache{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "count_cache").Logger(),
	}
}

func (c *RedisCountCache) GetCounts(ctx context.Context) (*model.EntityCounts, error) {
	raw, err := c.client.Get(ctx, countsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached counts: %w", err)
	}

	var counts model.EntityCounts
	if err := json.Unmarshal(raw, &counts); err != nil {
		c.logger.Warn().Err(err).Msg("discarding malformed cached counts")
		return nil, nil
	}

	return &counts, nil
}

func (c *RedisCountCache) SetCounts(ctx context.Context, counts *model.EntityCounts) error {
	raw, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("failed to encode counts: %w", err)
	}

	if err := c.client.Set(ctx, countsKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache counts: %w", err)
	}

	c.logger.Debug().Dur("ttl", c.ttl).Msg("entity counts cached")
	return nil
}
