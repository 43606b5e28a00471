package cache

import (
	"context"
	"slices"
	"sync/atomic"
	"time"
)

const defaultMemoryCapacity = 1024

type memoryItem struct {
	value     []byte
	expiresAt time.Time
}

func (i memoryItem) expired(now time.Time) bool {
	return !i.expiresAt.IsZero() && !now.Before(i.expiresAt)
}

// MemoryStore is an in-process Store backed by LRUCache.
// Entries are evicted by recency once either the entry capacity or the byte
// limit is exceeded.
type MemoryStore struct {
	entries     *LRUCache[string, memoryItem]
	memoryLimit int64
	used        atomic.Int64
	now         func() time.Time
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithCapacity bounds the number of entries. Non-positive values are ignored.
func WithCapacity(n int) MemoryOption {
	return func(s *MemoryStore) {
		if n > 0 {
			s.entries = NewLRUCache[string, memoryItem](n)
		}
	}
}

// WithMemoryLimit bounds the total size in bytes of stored values.
// Zero means unlimited.
func WithMemoryLimit(bytes int64) MemoryOption {
	return func(s *MemoryStore) {
		s.memoryLimit = max(bytes, 0)
	}
}

// WithClock replaces time.Now for expiry checks.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.entries == nil {
		s.entries = NewLRUCache[string, memoryItem](defaultMemoryCapacity)
	}
	s.entries.SetEvictCallback(func(_ string, item memoryItem) {
		s.used.Add(-int64(len(item.value)))
	})
	return s
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	item, ok := s.entries.Get(key)
	if !ok {
		return nil, ErrCacheMiss
	}
	if item.expired(s.now()) {
		s.entries.Remove(key)
		return nil, ErrCacheMiss
	}
	return slices.Clone(item.value), nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return ErrEmptyKey
	}
	size := int64(len(value))
	if s.memoryLimit > 0 && size > s.memoryLimit {
		return ErrValueTooLarge
	}

	item := memoryItem{value: slices.Clone(value)}
	if ttl > 0 {
		item.expiresAt = s.now().Add(ttl)
	}

	if old, replaced := s.entries.Put(key, item); replaced {
		s.used.Add(-int64(len(old.value)))
	}
	s.used.Add(size)

	for s.memoryLimit > 0 && s.used.Load() > s.memoryLimit {
		if _, _, ok := s.entries.RemoveOldest(); !ok {
			break
		}
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	s.entries.Remove(key)
	return nil
}

func (s *MemoryStore) Clear(context.Context) error {
	s.entries.Clear()
	return nil
}

// Len reports the number of stored entries, expired ones included until they are read.
func (s *MemoryStore) Len() int {
	return s.entries.Len()
}

// MemoryUsage reports the total size in bytes of stored values.
func (s *MemoryStore) MemoryUsage() int64 {
	return s.used.Load()
}
