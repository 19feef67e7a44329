package cache

import (
	"context"
	"time"
)

// Store is the key-value cache used to memoize deterministic analysis
// results. Get reports a miss with ok=false rather than an error.
type Store interface {
	Set(ctx context.Context, key, value string, expiration time.Duration) error
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Delete(ctx context.Context, key string) error
}
