package currency

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/formkit/pkg/cache"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// CacheConfig configures the store used for resolved locale data.
type CacheConfig struct {
	Capacity    int           `env:"CURRENCY_CACHE_CAPACITY" envDefault:"256"`
	MemoryLimit int64         `env:"CURRENCY_CACHE_MEMORY_LIMIT" envDefault:"0"`
	TTL         time.Duration `env:"CURRENCY_CACHE_TTL" envDefault:"0s"`
}

// MemoryStore builds an in-memory store sized by cfg.
func (cfg CacheConfig) MemoryStore() *cache.MemoryStore {
	return cache.NewMemoryStore(
		cache.WithCapacity(cfg.Capacity),
		cache.WithMemoryLimit(cfg.MemoryLimit),
	)
}

// resolved is the per locale and currency data kept in the cache.
type resolved struct {
	Format    NumberFormat `json:"format"`
	Symbol    string       `json:"symbol"`
	Precision int          `json:"precision"`
}

var (
	cacheMu  sync.RWMutex
	store    cache.Store
	cacheTTL time.Duration
	log      = logger.Discard()
)

// SetCache installs the store shared by all currencies. Nil removes it.
func SetCache(s cache.Store) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	store = s
}

// SetCacheTTL sets the lifetime of cached entries. Zero keeps them until evicted.
func SetCacheTTL(ttl time.Duration) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cacheTTL = max(ttl, 0)
}

// UseCache installs s with the TTL from cfg.
func UseCache(s cache.Store, cfg CacheConfig) {
	SetCache(s)
	SetCacheTTL(cfg.TTL)
}

// Cache returns the installed store or nil.
func Cache() cache.Store {
	cacheMu.RLock()
	defer cacheMu.RUnlock()
	return store
}

func HasCache() bool {
	return Cache() != nil
}

// ClearCache empties the installed store. It is a no-op without a store.
func ClearCache(ctx context.Context) error {
	s := Cache()
	if s == nil {
		return nil
	}
	return s.Clear(ctx)
}

// RemoveCache detaches the store without clearing it.
func RemoveCache() {
	SetCache(nil)
}

// SetLogger sets the logger used to report cache failures.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = logger.Discard()
	}
	cacheMu.Lock()
	defer cacheMu.Unlock()
	log = l.With(logger.Component("currency"))
}

func cacheKey(locale, code string) string {
	return "currency:" + locale + ":" + code
}

// resolve returns locale data for the pair, reading through the cache when
// one is installed. Cache failures are logged and never fail formatting.
func resolve(ctx context.Context, locale string, tag language.Tag, unit xcurrency.Unit) resolved {
	cacheMu.RLock()
	s, ttl, l := store, cacheTTL, log
	cacheMu.RUnlock()

	key := cacheKey(locale, unit.String())
	if s != nil {
		data, err := s.Get(ctx, key)
		switch {
		case err == nil:
			var r resolved
			if err := json.Unmarshal(data, &r); err == nil {
				return r
			}
			l.WarnContext(ctx, "discarding malformed cache entry", slog.String("key", key))
		case !errors.Is(err, cache.ErrCacheMiss):
			l.WarnContext(ctx, "currency cache read failed", slog.String("key", key), logger.Error(err))
		}
	}

	scale, _ := xcurrency.Standard.Rounding(unit)
	r := resolved{
		Format:    lookupNumberFormat(locale, tag),
		Symbol:    message.NewPrinter(tag).Sprint(xcurrency.Symbol(unit)),
		Precision: scale,
	}

	if s != nil {
		data, err := json.Marshal(r)
		if err == nil {
			err = s.Set(ctx, key, data, ttl)
		}
		if err != nil {
			l.WarnContext(ctx, "currency cache write failed",
				slog.String("key", key),
				logger.Locale(locale),
				logger.Currency(unit.String()),
				logger.Error(err),
			)
		}
	}
	return r
}
