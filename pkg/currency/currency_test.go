package currency_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/cache"
	"github.com/dmitrymomot/formkit/pkg/currency"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("locale with region", func(t *testing.T) {
		t.Parallel()
		c, err := currency.New("de_AT")
		require.NoError(t, err)
		assert.Equal(t, "de_AT", c.Locale())
		assert.Equal(t, "EUR", c.Code())
		assert.Equal(t, "€", c.Symbol())
		assert.Equal(t, 2, c.Precision())
		assert.Equal(t, "de_AT EUR", c.String())
	})

	t.Run("hyphenated locale is normalized", func(t *testing.T) {
		t.Parallel()
		c, err := currency.New("en-US")
		require.NoError(t, err)
		assert.Equal(t, "en_US", c.Locale())
		assert.Equal(t, "USD", c.Code())
	})

	t.Run("invalid locale", func(t *testing.T) {
		t.Parallel()
		_, err := currency.New("something")
		require.ErrorIs(t, err, currency.ErrLocaleNotFound)
		assert.Equal(t, `locale "something" not found`, err.Error())
	})

	t.Run("empty locale", func(t *testing.T) {
		t.Parallel()
		_, err := currency.New("")
		assert.ErrorIs(t, err, currency.ErrLocaleNotFound)
	})

	t.Run("locale without region", func(t *testing.T) {
		t.Parallel()
		_, err := currency.New("de")
		require.ErrorIs(t, err, currency.ErrRegionNotFound)
		assert.Equal(t, `no region found within the locale "de"`, err.Error())
	})

	t.Run("unknown language", func(t *testing.T) {
		t.Parallel()
		_, err := currency.New("xx")
		assert.Error(t, err)
	})

	t.Run("unknown currency code", func(t *testing.T) {
		t.Parallel()
		_, err := currency.New("de_AT", currency.WithCurrency("QQQ"))
		assert.ErrorIs(t, err, currency.ErrCurrencyNotFound)
	})

	t.Run("precision out of range", func(t *testing.T) {
		t.Parallel()
		_, err := currency.New("de_AT", currency.WithPrecision(20))
		assert.ErrorIs(t, err, currency.ErrInvalidPrecision)
	})

	t.Run("MustNew panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { currency.MustNew("de") })
		assert.NotPanics(t, func() { currency.MustNew("de_DE") })
	})
}

func TestIsLocale(t *testing.T) {
	t.Parallel()

	assert.True(t, currency.IsLocale("de_AT"))
	assert.True(t, currency.IsLocale("en-GB"))
	assert.False(t, currency.IsLocale("de"))
	assert.False(t, currency.IsLocale("EUR"))
	assert.False(t, currency.IsLocale(""))

	n, err := currency.NormalizeLocale("pt-BR")
	require.NoError(t, err)
	assert.Equal(t, "pt_BR", n)
}

func TestCurrency_Format(t *testing.T) {
	t.Parallel()

	deAT := currency.MustNew("de_AT")

	tests := []struct {
		name   string
		c      *currency.Currency
		amount float64
		opts   []currency.Option
		want   string
	}{
		{name: "grouping and decimals", c: deAT, amount: 1234.56, want: "€ 1.234,56"},
		{name: "rounds to precision", c: deAT, amount: 0.123, want: "€ 0,12"},
		{name: "rounds up", c: deAT, amount: 0.376, want: "€ 0,38"},
		{name: "millions", c: deAT, amount: 1234567.891, want: "€ 1.234.567,89"},
		{name: "negative", c: deAT, amount: -1234.56, want: "-€ 1.234,56"},
		{name: "negative zero after rounding", c: deAT, amount: -0.001, want: "€ 0,00"},
		{name: "short name", c: deAT, amount: 1234.56, opts: []currency.Option{currency.WithDisplay(currency.UseShortName)}, want: "EUR 1.234,56"},
		{name: "no symbol", c: deAT, amount: 1234.56, opts: []currency.Option{currency.WithDisplay(currency.NoSymbol)}, want: "1.234,56"},
		{name: "symbol on the right", c: deAT, amount: 1234.56, opts: []currency.Option{currency.WithPosition(currency.Right)}, want: "1.234,56 €"},
		{name: "custom symbol", c: deAT, amount: 1234.56, opts: []currency.Option{currency.WithSymbol("EURO")}, want: "EURO 1.234,56"},
		{name: "custom precision", c: deAT, amount: 1234.56, opts: []currency.Option{currency.WithPrecision(3)}, want: "€ 1.234,560"},
		{name: "zero precision", c: deAT, amount: 1234.56, opts: []currency.Option{currency.WithPrecision(0)}, want: "€ 1.235"},
		{name: "symbol after number", c: currency.MustNew("de_DE"), amount: 1234.56, want: "1.234,56 €"},
		{name: "symbol forced left", c: currency.MustNew("de_DE"), amount: 1234.56, opts: []currency.Option{currency.WithPosition(currency.Left)}, want: "€ 1.234,56"},
		{name: "us dollars", c: currency.MustNew("en_US"), amount: 1234.56, want: "$1,234.56"},
		{name: "short name gets a space", c: currency.MustNew("en_US"), amount: 1234.56, opts: []currency.Option{currency.WithDisplay(currency.UseShortName)}, want: "USD 1,234.56"},
		{name: "yen has no decimals", c: currency.MustNew("en_US"), amount: 1234.56, opts: []currency.Option{currency.WithCurrency("JPY"), currency.WithDisplay(currency.UseShortName)}, want: "JPY 1,235"},
		{name: "swiss grouping", c: currency.MustNew("de_CH"), amount: 1234.5, opts: []currency.Option{currency.WithDisplay(currency.UseShortName)}, want: "CHF 1'234.50"},
		{name: "other locale per call", c: deAT, amount: 1234.56, opts: []currency.Option{currency.WithLocale("en_US")}, want: "$1,234.56"},
		{name: "explicit currency survives locale switch", c: deAT, amount: 1, opts: []currency.Option{currency.WithCurrency("USD"), currency.WithLocale("de_DE"), currency.WithDisplay(currency.UseShortName)}, want: "1,00 USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.c.Format(tt.amount, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrency_FormatInvalid(t *testing.T) {
	t.Parallel()

	c := currency.MustNew("de_AT")

	_, err := c.Format(math.NaN())
	assert.ErrorIs(t, err, currency.ErrInvalidAmount)

	_, err = c.Format(math.Inf(1))
	assert.ErrorIs(t, err, currency.ErrInvalidAmount)

	_, err = c.Format(1, currency.WithLocale("de"))
	assert.ErrorIs(t, err, currency.ErrRegionNotFound)
}

func TestCurrency_With(t *testing.T) {
	t.Parallel()

	c := currency.MustNew("de_AT")

	same, err := c.With()
	require.NoError(t, err)
	assert.Same(t, c, same)

	usd, err := c.With(currency.WithCurrency("usd"), currency.WithDisplay(currency.UseShortName))
	require.NoError(t, err)
	assert.Equal(t, "USD", usd.Code())
	assert.Equal(t, currency.UseShortName, usd.Display())
	assert.Equal(t, "de_AT", usd.Locale())

	// original is unchanged
	assert.Equal(t, "EUR", c.Code())
	assert.Equal(t, currency.UseSymbol, c.Display())
	assert.Equal(t, currency.Standard, c.Position())
}

func TestCurrency_ToCurrency(t *testing.T) {
	t.Parallel()

	c := currency.MustNew("de_AT")

	for _, v := range []any{1234.56, float32(2.5), 10, int64(7), uint8(3), "1234.56", " 99.9 "} {
		_, err := c.ToCurrency(v)
		assert.NoError(t, err, "%v", v)
	}

	got, err := c.ToCurrency("1234.56")
	require.NoError(t, err)
	assert.Equal(t, "€ 1.234,56", got)

	got, err = c.ToCurrency(42)
	require.NoError(t, err)
	assert.Equal(t, "€ 42,00", got)

	_, err = c.ToCurrency("abc")
	assert.ErrorIs(t, err, currency.ErrInvalidAmount)

	_, err = c.ToCurrency(struct{}{})
	assert.ErrorIs(t, err, currency.ErrInvalidAmount)

	_, err = c.ToCurrency(nil)
	assert.ErrorIs(t, err, currency.ErrInvalidAmount)
}

// The cache tests share package state and must not run in parallel.
func TestCache(t *testing.T) {
	ctx := context.Background()

	store := cache.NewMemoryStore()
	currency.SetCache(store)
	t.Cleanup(currency.RemoveCache)

	require.True(t, currency.HasCache())
	assert.Same(t, store, currency.Cache())

	t.Run("resolved data is stored", func(t *testing.T) {
		_, err := currency.New("de_AT")
		require.NoError(t, err)

		data, err := store.Get(ctx, "currency:de_AT:EUR")
		require.NoError(t, err)
		assert.JSONEq(t, `{"format":{"decimal":",","group":".","symbol_first":true,"spacing":" "},"symbol":"€","precision":2}`, string(data))
	})

	t.Run("cached data is used", func(t *testing.T) {
		entry := `{"format":{"decimal":".","group":" ","symbol_first":false,"spacing":""},"symbol":"E","precision":1}`
		require.NoError(t, store.Set(ctx, "currency:fr_FR:EUR", []byte(entry), 0))

		c, err := currency.New("fr_FR")
		require.NoError(t, err)
		got, err := c.Format(1234.56)
		require.NoError(t, err)
		assert.Equal(t, "1 234.6E", got)
	})

	t.Run("malformed entry is recomputed", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "currency:en_US:USD", []byte("{"), 0))

		c, err := currency.New("en_US")
		require.NoError(t, err)
		got, err := c.Format(1)
		require.NoError(t, err)
		assert.Equal(t, "$1.00", got)
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, currency.ClearCache(ctx))
		assert.Equal(t, 0, store.Len())
	})

	t.Run("remove", func(t *testing.T) {
		currency.RemoveCache()
		assert.False(t, currency.HasCache())
		assert.NoError(t, currency.ClearCache(ctx))

		_, err := currency.New("de_AT")
		require.NoError(t, err)
		assert.Equal(t, 0, store.Len())
	})
}

func TestCacheConfig_MemoryStore(t *testing.T) {
	cfg := currency.CacheConfig{Capacity: 2}
	s := cfg.MemoryStore()

	currency.UseCache(s, cfg)
	t.Cleanup(currency.RemoveCache)

	for _, locale := range []string{"de_AT", "de_DE", "en_US"} {
		_, err := currency.New(locale)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, s.Len())
}
