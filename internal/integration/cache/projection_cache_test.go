package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liq-planung/backend/internal/application/adapter"
)

func newTestCache(t *testing.T, ttl time.Duration) (adapter.ProjectionCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisProjectionCache(client, ttl), server
}

func TestRedisProjectionCache_SetAndGet(t *testing.T) {
	ctx := context.Background()
	cache, server := newTestCache(t, time.Minute)
	userID := uuid.New()

	_, err := cache.Get(ctx, userID, "abc")
	assert.ErrorIs(t, err, adapter.ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, userID, "abc", []byte(`{"entries":[]}`)))

	payload, err := cache.Get(ctx, userID, "abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"entries":[]}`, string(payload))

	assert.True(t, server.Exists("forecast:"+userID.String()+":abc"))

	_, err = cache.Get(ctx, uuid.New(), "abc")
	assert.ErrorIs(t, err, adapter.ErrCacheMiss)
}

func TestRedisProjectionCache_Expires(t *testing.T) {
	ctx := context.Background()
	cache, server := newTestCache(t, 5*time.Minute)
	userID := uuid.New()

	require.NoError(t, cache.Set(ctx, userID, "abc", []byte("payload")))
	assert.Equal(t, 5*time.Minute, server.TTL("forecast:"+userID.String()+":abc"))

	server.FastForward(6 * time.Minute)

	_, err := cache.Get(ctx, userID, "abc")
	assert.ErrorIs(t, err, adapter.ErrCacheMiss)
}

func TestRedisProjectionCache_Unavailable(t *testing.T) {
	ctx := context.Background()
	cache, server := newTestCache(t, time.Minute)

	require.NoError(t, cache.Ping(ctx))
	server.Close()

	assert.Error(t, cache.Ping(ctx))
	_, err := cache.Get(ctx, uuid.New(), "abc")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, adapter.ErrCacheMiss)
}

func TestNoopProjectionCache(t *testing.T) {
	ctx := context.Background()
	cache := NewNoopProjectionCache()

	require.NoError(t, cache.Set(ctx, uuid.New(), "abc", []byte("payload")))
	_, err := cache.Get(ctx, uuid.New(), "abc")
	assert.ErrorIs(t, err, adapter.ErrCacheMiss)
	assert.NoError(t, cache.Ping(ctx))
}
