// Package cache implements the projection cache on Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/liq-planung/backend/internal/application/adapter"
)

const keyPrefix = "forecast"

// redisProjectionCache implements adapter.ProjectionCache.
// Entries are keyed by the input fingerprint, so they never need invalidation
// and simply expire after ttl.
type redisProjectionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisProjectionCache creates a new Redis-backed projection cache.
func NewRedisProjectionCache(client *redis.Client, ttl time.Duration) adapter.ProjectionCache {
	return &redisProjectionCache{
		client: client,
		ttl:    ttl,
	}
}

func key(userID uuid.UUID, fingerprint string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, userID, fingerprint)
}

// Get returns the cached payload or adapter.ErrCacheMiss.
func (c *redisProjectionCache) Get(ctx context.Context, userID uuid.UUID, fingerprint string) ([]byte, error) {
	payload, err := c.client.Get(ctx, key(userID, fingerprint)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, adapter.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read projection cache: %w", err)
	}
	return payload, nil
}

// Set stores payload with the configured TTL.
func (c *redisProjectionCache) Set(ctx context.Context, userID uuid.UUID, fingerprint string, payload []byte) error {
	if err := c.client.Set(ctx, key(userID, fingerprint), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write projection cache: %w", err)
	}
	return nil
}

// Ping checks the Redis connection.
func (c *redisProjectionCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// noopProjectionCache is used when caching is disabled. Every lookup misses.
type noopProjectionCache struct{}

// NewNoopProjectionCache creates a cache that stores nothing.
func NewNoopProjectionCache() adapter.ProjectionCache {
	return noopProjectionCache{}
}

func (noopProjectionCache) Get(context.Context, uuid.UUID, string) ([]byte, error) {
	return nil, adapter.ErrCacheMiss
}

func (noopProjectionCache) Set(context.Context, uuid.UUID, string, []byte) error {
	return nil
}

func (noopProjectionCache) Ping(context.Context) error {
	return nil
}
