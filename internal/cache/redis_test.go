package cache

import (
	"context"
	"testing"
	"time"

	"cuisinecraft-hub/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func setupRedis(t *testing.T) (*redis.Client, func()) {
	if testing.Short() {
		t.Skip("skipping container-backed cache test in short mode")
	}

	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	require.NoError(t, client.Ping(ctx).Err())

	return client, func() {
		_ = client.Close()
		_ = container.Terminate(ctx)
	}
}

func TestRedisCountCache_RoundTrip(t *testing.T) {
	client, cleanup := setupRedis(t)
	defer cleanup()

	ctx := context.Background()
	c := NewRedisCountCache(client, time.Minute, zerolog.Nop())

	miss, err := c.GetCounts(ctx)
	require.NoError(t, err)
	assert.Nil(t, miss)

	want := &model.EntityCounts{Users: 3, MenuItems: 12, Orders: 7}
	require.NoError(t, c.SetCounts(ctx, want))

	got, err := c.GetCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	ttl, err := client.TTL(ctx, countsKey).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestRedisCountCache_MalformedEntryIsAMiss(t *testing.T) {
	client, cleanup := setupRedis(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, countsKey, "not json", 0).Err())

	got, err := NewRedisCountCache(client, time.Minute, zerolog.Nop()).GetCounts(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNoop(t *testing.T) {
	var c CountCache = Noop{}

	require.NoError(t, c.SetCounts(context.Background(), &model.EntityCounts{Users: 1}))

	got, err := c.GetCounts(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}
