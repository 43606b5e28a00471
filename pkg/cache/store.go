package cache

import (
	"context"
	"time"
)

// Store is a byte oriented key/value cache shared by in-process and remote backends.
// A zero ttl stores the value without expiry.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
