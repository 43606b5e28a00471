// Package redis connects to a Redis server and exposes it as a cache.Store.
//
// Connect retries the initial ping according to Config:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// Store namespaces keys with a prefix and maps redis.Nil to cache.ErrCacheMiss,
// so it can replace the in-memory store anywhere a cache.Store is accepted:
//
//	store := redis.NewStoreFromConfig(client, cfg)
//	currency.SetCache(store)
//
// Clear deletes only keys under the prefix, iterating with SCAN.
//
// Healthcheck returns a check suitable for readiness endpoints.
package redis
