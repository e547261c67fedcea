// Package cache stores serialized analysis results, either in process memory
// or in redis when several instances share the work.
package cache

import (
	"context"
	"errors"
	"time"
)

var (
	ErrMiss = errors.New("cache miss")
	// ErrTooLarge is returned by Set when the backend refuses the entry size.
	ErrTooLarge = errors.New("cache entry too large")
)

type Cache interface {
	// Get returns ErrMiss when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
