package viewhelper_test

import (
	"context"
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/cache"
	"github.com/dmitrymomot/formkit/pkg/currency"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/viewhelper"
)

func newHelper(t *testing.T) *viewhelper.Currency {
	t.Helper()
	h, err := viewhelper.NewCurrencyForLocale("de_AT")
	require.NoError(t, err)
	return h
}

func invokeString(t *testing.T, h *viewhelper.Currency, args ...any) string {
	t.Helper()
	out, err := h.Invoke(args...)
	require.NoError(t, err)
	s, ok := out.(string)
	require.True(t, ok, "expected string, got %T", out)
	return s
}

func TestCurrency_CurrencyPassedToConstructor(t *testing.T) {
	t.Parallel()

	h := viewhelper.NewCurrency(currency.MustNew("de_AT"))
	assert.Equal(t, "€ 1.234,56", invokeString(t, h, 1234.56))
	assert.Equal(t, "€ 0,12", invokeString(t, h, 0.123))
}

func TestCurrency_SetCurrency(t *testing.T) {
	t.Parallel()

	h := viewhelper.NewCurrency(nil)
	assert.Same(t, h, h.SetCurrency(currency.MustNew("de_AT")))
	assert.Equal(t, "€ 1.234,56", invokeString(t, h, 1234.56))
	assert.Equal(t, "€ 0,12", invokeString(t, h, 0.123))

	h.SetCurrency(nil)
	assert.Equal(t, currency.DefaultLocale, h.Currency().Locale())
}

func TestCurrency_InvalidLocale(t *testing.T) {
	t.Parallel()

	_, err := viewhelper.NewCurrencyForLocale("something")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	h := newHelper(t)
	err = h.SetCurrencyLocale("de")
	require.ErrorIs(t, err, currency.ErrRegionNotFound)
	assert.Contains(t, err.Error(), "within the locale")

	// unchanged after a failed update
	assert.Equal(t, "de_AT", h.Currency().Locale())

	require.NoError(t, h.SetCurrencyLocale("en_US"))
	assert.Equal(t, "USD", h.Currency().Code())
}

func TestCurrency_InvokeWithOptions(t *testing.T) {
	t.Parallel()

	h := newHelper(t)

	assert.Equal(t, "€ 1.234,56", invokeString(t, h, 1234.56, "de_AT"))
	assert.Equal(t, "$1,234.56", invokeString(t, h, 1234.56, "en_US"))
	assert.Equal(t, "USD 1,00", invokeString(t, h, 1, "USD", currency.WithDisplay(currency.UseShortName)))
	assert.Equal(t, "1.234,56", invokeString(t, h, "1234.56", []currency.Option{currency.WithDisplay(currency.NoSymbol)}))

	_, err := h.Invoke(1, 42)
	assert.ErrorIs(t, err, viewhelper.ErrInvalidArgument)

	_, err = h.Invoke("abc")
	assert.ErrorIs(t, err, currency.ErrInvalidAmount)

	_, err = h.Invoke(1, "QQQ")
	assert.ErrorIs(t, err, currency.ErrCurrencyNotFound)
}

func TestCurrency_NeverNil(t *testing.T) {
	t.Parallel()

	h := viewhelper.NewCurrency(nil)
	c := h.Currency()
	require.NotNil(t, c)
	assert.Equal(t, "en_US", c.Locale())
	assert.Same(t, c, h.Currency())

	assert.NotNil(t, newHelper(t).Currency())
}

func TestCurrency_InvokeWithoutArgumentsReturnsHelper(t *testing.T) {
	t.Parallel()

	h := newHelper(t)
	out, err := h.Invoke()
	require.NoError(t, err)
	assert.Same(t, h, out)

	h.SetCurrency(currency.MustNew("de_AT"))
	out, err = h.Invoke()
	require.NoError(t, err)
	assert.Same(t, h, out)
}

func TestCurrency_FuncMap(t *testing.T) {
	t.Parallel()

	h := newHelper(t)
	tmpl := template.Must(template.New("price").
		Funcs(h.FuncMap()).
		Parse(`{{ currency .Price }}|{{ currency .Price "en_US" }}`))

	var b strings.Builder
	require.NoError(t, tmpl.Execute(&b, map[string]any{"Price": 1234.56}))
	assert.Equal(t, "€ 1.234,56|$1,234.56", b.String())

	bad := template.Must(template.New("bad").Funcs(h.FuncMap()).Parse(`{{ currency .Price }}`))
	assert.Error(t, bad.Execute(&b, map[string]any{"Price": "n/a"}))
}

func TestCurrency_Component(t *testing.T) {
	t.Parallel()

	h := newHelper(t)

	t.Run("default locale", func(t *testing.T) {
		t.Parallel()
		var b strings.Builder
		require.NoError(t, h.Component(1234.56).Render(context.Background(), &b))
		assert.Equal(t, "€ 1.234,56", b.String())
	})

	t.Run("request locale keeps the currency", func(t *testing.T) {
		t.Parallel()
		ctx := i18n.SetLocale(context.Background(), "en-US")
		var b strings.Builder
		require.NoError(t, h.Component(1234.56).Render(ctx, &b))
		assert.Equal(t, "€1,234.56", b.String())
	})

	t.Run("language without region is ignored", func(t *testing.T) {
		t.Parallel()
		ctx := i18n.SetLocale(context.Background(), "de")
		var b strings.Builder
		require.NoError(t, h.Component(0.123).Render(ctx, &b))
		assert.Equal(t, "€ 0,12", b.String())
	})

	t.Run("escapes custom symbols", func(t *testing.T) {
		t.Parallel()
		var b strings.Builder
		require.NoError(t, h.Component(1, currency.WithSymbol("<b>")).Render(context.Background(), &b))
		assert.Equal(t, "&lt;b&gt; 1,00", b.String())
	})

	t.Run("render error", func(t *testing.T) {
		t.Parallel()
		var b strings.Builder
		assert.ErrorIs(t, h.Component("x").Render(context.Background(), &b), currency.ErrInvalidAmount)
	})
}

// Shares the currency package cache and must not run in parallel.
func TestCurrency_WithMemoryCache(t *testing.T) {
	store := cache.NewMemoryStore(cache.WithMemoryLimit(0))
	currency.SetCache(store)
	t.Cleanup(currency.RemoveCache)

	h := newHelper(t)
	assert.Equal(t, "€ 1.234,56", invokeString(t, h, 1234.56))
	assert.Equal(t, "€ 0,12", invokeString(t, h, 0.123))

	_, err := store.Get(context.Background(), "currency:de_AT:EUR")
	assert.NoError(t, err)
}
