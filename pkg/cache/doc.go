// Package cache provides the caching primitives used by formkit: a generic,
// thread-safe LRU container and the byte oriented Store interface with an
// in-memory implementation built on top of it.
//
// # LRU
//
//	c := cache.NewLRUCache[string, int](100)
//	c.Put("a", 1)
//	v, ok := c.Get("a")
//
// Get, Put and Remove run in O(1). An optional evict callback is invoked for
// every entry that leaves the cache.
//
// # Store
//
// Store is implemented by MemoryStore here and by redis.Store in the redis
// package. The currency package uses it to keep resolved locale formats:
//
//	store := cache.NewMemoryStore(
//		cache.WithCapacity(256),
//		cache.WithMemoryLimit(1<<20),
//	)
//	currency.SetCache(store)
//
// Get returns ErrCacheMiss for absent or expired keys. A zero memory limit
// disables the byte bound; the entry capacity still applies.
package cache
