// Package cache stores JSON-encoded values with a TTL.
package cache

import (
	"context"
	"time"
)

// Cache is satisfied by the Redis store and by Noop.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Noop never hits. It is used when no Redis address is configured.
type Noop struct{}

func (Noop) GetJSON(context.Context, string, any) (bool, error) {
	return false, nil
}

func (Noop) SetJSON(context.Context, string, any, time.Duration) error {
	return nil
}
