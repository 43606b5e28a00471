package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/formkit/pkg/cache"
)

const defaultScanBatchSize = 1000

var _ cache.Store = (*Store)(nil)

// Store implements cache.Store on top of a go-redis client.
// All keys are namespaced with a prefix so Clear never touches foreign keys.
type Store struct {
	db            redis.UniversalClient
	prefix        string
	scanBatchSize int64
}

// StoreOption configures a Store.
type StoreOption func(*Store)

func WithKeyPrefix(prefix string) StoreOption {
	return func(s *Store) {
		s.prefix = prefix
	}
}

func WithScanBatchSize(n int64) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.scanBatchSize = n
		}
	}
}

func NewStore(client redis.UniversalClient, opts ...StoreOption) *Store {
	s := &Store{
		db:            client,
		scanBatchSize: defaultScanBatchSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewStoreFromConfig applies the prefix and scan batch size from cfg.
func NewStoreFromConfig(client redis.UniversalClient, cfg Config) *Store {
	return NewStore(client, WithKeyPrefix(cfg.KeyPrefix), WithScanBatchSize(cfg.ScanBatchSize))
}

// Key returns the namespaced redis key for key.
func (s *Store) Key(key string) string {
	return s.prefix + key
}

// Get maps redis.Nil to cache.ErrCacheMiss.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, cache.ErrEmptyKey
	}
	val, err := s.db.Get(ctx, s.Key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, cache.ErrCacheMiss
	}
	if err != nil {
		return nil, errors.Join(ErrCommandFailed, err)
	}
	return val, nil
}

// Set stores value with expiration. Zero ttl means no expiration.
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return cache.ErrEmptyKey
	}
	if err := s.db.Set(ctx, s.Key(key), value, ttl).Err(); err != nil {
		return errors.Join(ErrCommandFailed, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return cache.ErrEmptyKey
	}
	if err := s.db.Del(ctx, s.Key(key)).Err(); err != nil {
		return errors.Join(ErrCommandFailed, err)
	}
	return nil
}

// Clear removes every key under the prefix using SCAN so redis is never blocked.
// An empty prefix refuses to run instead of wiping the database.
func (s *Store) Clear(ctx context.Context) error {
	if s.prefix == "" {
		return ErrEmptyKeyPrefix
	}

	var cursor uint64
	for {
		keys, next, err := s.db.Scan(ctx, cursor, s.prefix+"*", s.scanBatchSize).Result()
		if err != nil {
			return errors.Join(ErrCommandFailed, err)
		}
		if len(keys) > 0 {
			if err := s.db.Del(ctx, keys...).Err(); err != nil {
				return errors.Join(ErrCommandFailed, err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// Conn returns the underlying client.
func (s *Store) Conn() redis.UniversalClient {
	return s.db
}
