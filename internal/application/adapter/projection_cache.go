// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrCacheMiss is returned by ProjectionCache.Get when no value is stored under the key.
var ErrCacheMiss = errors.New("cache miss")

// ProjectionCache stores encoded projection results keyed by user and input fingerprint.
type ProjectionCache interface {
	// Get returns the cached payload or ErrCacheMiss.
	Get(ctx context.Context, userID uuid.UUID, fingerprint string) ([]byte, error)

	// Set stores the payload with the cache's configured TTL.
	Set(ctx context.Context, userID uuid.UUID, fingerprint string, payload []byte) error

	// Ping reports whether the cache backend is reachable.
	Ping(ctx context.Context) error
}
