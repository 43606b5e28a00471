package redis_test

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/cache"
	"github.com/dmitrymomot/formkit/pkg/redis"
)

// unreachableClient points at a closed port so every command fails fast.
func unreachableClient(t *testing.T) *goredis.Client {
	t.Helper()
	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestStore_Key(t *testing.T) {
	t.Parallel()

	s := redis.NewStore(unreachableClient(t), redis.WithKeyPrefix("app:"))
	assert.Equal(t, "app:currency:de_AT:EUR", s.Key("currency:de_AT:EUR"))

	cfgStore := redis.NewStoreFromConfig(unreachableClient(t), redis.Config{KeyPrefix: "cfg:"})
	assert.Equal(t, "cfg:x", cfgStore.Key("x"))
}

func TestStore_EmptyKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := redis.NewStore(unreachableClient(t), redis.WithKeyPrefix("app:"))

	_, err := s.Get(ctx, "")
	assert.ErrorIs(t, err, cache.ErrEmptyKey)
	assert.ErrorIs(t, s.Set(ctx, "", []byte("x"), 0), cache.ErrEmptyKey)
	assert.ErrorIs(t, s.Delete(ctx, ""), cache.ErrEmptyKey)
}

func TestStore_ClearRequiresPrefix(t *testing.T) {
	t.Parallel()

	s := redis.NewStore(unreachableClient(t))
	assert.ErrorIs(t, s.Clear(context.Background()), redis.ErrEmptyKeyPrefix)
}

func TestStore_CommandErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := redis.NewStore(unreachableClient(t), redis.WithKeyPrefix("app:"))

	_, err := s.Get(ctx, "k")
	require.Error(t, err)
	assert.ErrorIs(t, err, redis.ErrCommandFailed)
	assert.NotErrorIs(t, err, cache.ErrCacheMiss)

	assert.ErrorIs(t, s.Set(ctx, "k", []byte("v"), time.Minute), redis.ErrCommandFailed)
	assert.ErrorIs(t, s.Clear(ctx), redis.ErrCommandFailed)
}

func TestConnect_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := redis.Connect(ctx, redis.Config{})
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)

	_, err = redis.Connect(ctx, redis.Config{ConnectionURL: "mysql://nope"})
	assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)

	_, err = redis.Connect(ctx, redis.Config{
		ConnectionURL:  "redis://127.0.0.1:1/0",
		RetryAttempts:  2,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: time.Second,
	})
	assert.ErrorIs(t, err, redis.ErrRedisNotReady)
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	check := redis.Healthcheck(unreachableClient(t))
	assert.ErrorIs(t, check(context.Background()), redis.ErrHealthcheckFailed)
}
