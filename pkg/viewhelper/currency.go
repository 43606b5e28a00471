package viewhelper

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/formkit/pkg/currency"
	"github.com/dmitrymomot/formkit/pkg/i18n"
)

// Currency is a view helper that formats amounts with a default currency.
// It is safe for concurrent use.
type Currency struct {
	mu       sync.RWMutex
	currency *currency.Currency
}

// NewCurrency returns a helper using c. With a nil c the helper falls back to
// currency.DefaultLocale on first use.
func NewCurrency(c *currency.Currency) *Currency {
	return &Currency{currency: c}
}

// NewCurrencyForLocale returns a helper for locale, e.g. "de_AT".
func NewCurrencyForLocale(locale string) (*Currency, error) {
	c, err := currency.New(locale)
	if err != nil {
		return nil, err
	}
	return NewCurrency(c), nil
}

// SetCurrency replaces the default currency. Nil restores the fallback.
func (h *Currency) SetCurrency(c *currency.Currency) *Currency {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.currency = c
	return h
}

// SetCurrencyLocale replaces the default currency with one built for locale.
// The helper is left unchanged on error.
func (h *Currency) SetCurrencyLocale(locale string) error {
	c, err := currency.New(locale)
	if err != nil {
		return err
	}
	h.SetCurrency(c)
	return nil
}

// Currency returns the default currency. It is never nil.
func (h *Currency) Currency() *currency.Currency {
	h.mu.RLock()
	c := h.currency
	h.mu.RUnlock()
	if c != nil {
		return c
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.currency == nil {
		h.currency = currency.MustNew(currency.DefaultLocale)
	}
	return h.currency
}

// Invoke is the template entry point. Without arguments it returns the helper
// itself. Otherwise the first argument is the amount and the remaining ones
// are options: a string is read as a locale when it parses as one and as a
// currency code otherwise.
func (h *Currency) Invoke(args ...any) (any, error) {
	if len(args) == 0 {
		return h, nil
	}
	opts, err := invokeOptions(args[1:])
	if err != nil {
		return nil, err
	}
	return h.Format(args[0], opts...)
}

func invokeOptions(args []any) ([]currency.Option, error) {
	opts := make([]currency.Option, 0, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			if currency.IsLocale(v) {
				opts = append(opts, currency.WithLocale(v))
			} else {
				opts = append(opts, currency.WithCurrency(v))
			}
		case currency.Option:
			opts = append(opts, v)
		case []currency.Option:
			opts = append(opts, v...)
		case nil:
		default:
			return nil, fmt.Errorf("%w: %T", ErrInvalidArgument, arg)
		}
	}
	return opts, nil
}

// Format renders amount, a number or numeric string, with the default currency.
func (h *Currency) Format(amount any, opts ...currency.Option) (string, error) {
	return h.Currency().ToCurrency(amount, opts...)
}

// FormatContext is Format using the request locale stored by i18n.Middleware
// when it names a region. The currency itself stays the default one.
func (h *Currency) FormatContext(ctx context.Context, amount any, opts ...currency.Option) (string, error) {
	c := h.Currency()
	if locale := i18n.GetLocale(ctx); currency.IsLocale(locale) {
		opts = append([]currency.Option{
			currency.WithCurrency(c.Code()),
			currency.WithLocale(locale),
		}, opts...)
	}
	return c.ToCurrency(amount, opts...)
}

// FuncMap exposes the helper to html/template as "currency":
//
//	{{ currency .Price }}
//	{{ currency .Price "USD" }}
func (h *Currency) FuncMap() template.FuncMap {
	return template.FuncMap{
		"currency": func(amount any, args ...any) (string, error) {
			opts, err := invokeOptions(args)
			if err != nil {
				return "", err
			}
			return h.Format(amount, opts...)
		},
	}
}

// Component renders the formatted amount as escaped text for templ views.
// The request locale is taken from the render context.
func (h *Currency) Component(amount any, opts ...currency.Option) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s, err := h.FormatContext(ctx, amount, opts...)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, templ.EscapeString(s))
		return err
	})
}
