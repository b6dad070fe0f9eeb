package repository

import (
	"context"
	"time"
)

// Cache is the byte-level cache capability used by the cached store
// decorator. Implementations must treat a miss as an error return.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
