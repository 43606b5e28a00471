package currency

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
)

const maxPrecision = 15

// Currency binds a locale to an ISO 4217 currency and formats amounts.
// A Currency is immutable; With returns a modified copy.
type Currency struct {
	settings settings

	tag       language.Tag
	locale    string
	unit      xcurrency.Unit
	format    NumberFormat
	symbol    string
	precision int
}

// New creates a Currency for locale, e.g. "de_AT" or "en-US". The locale must
// carry a region; the currency defaults to the region's tender.
func New(locale string, opts ...Option) (*Currency, error) {
	return NewWithContext(context.Background(), locale, opts...)
}

// NewWithContext is New with a context used for cache lookups.
func NewWithContext(ctx context.Context, locale string, opts ...Option) (*Currency, error) {
	s := settings{locale: locale, precision: -1}
	for _, opt := range opts {
		opt(&s)
	}
	return build(ctx, s)
}

// MustNew is like New but panics on error.
func MustNew(locale string, opts ...Option) *Currency {
	c, err := New(locale, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func build(ctx context.Context, s settings) (*Currency, error) {
	if s.precision > maxPrecision {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrInvalidPrecision, s.precision, maxPrecision)
	}

	tag, key, err := parseLocale(s.locale)
	if err != nil {
		return nil, err
	}

	unit, err := resolveUnit(tag, s.code, s.locale)
	if err != nil {
		return nil, err
	}

	data := resolve(ctx, key, tag, unit)

	c := &Currency{
		settings:  s,
		tag:       tag,
		locale:    key,
		unit:      unit,
		format:    data.Format,
		symbol:    data.Symbol,
		precision: data.Precision,
	}
	if s.precision >= 0 {
		c.precision = s.precision
	}
	return c, nil
}

func resolveUnit(tag language.Tag, code, locale string) (xcurrency.Unit, error) {
	if code != "" {
		unit, err := xcurrency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
		if err != nil {
			return xcurrency.Unit{}, newLookupError(ErrCurrencyNotFound, "currency %q not found", code)
		}
		return unit, nil
	}

	region, _ := tag.Region()
	unit, ok := xcurrency.FromRegion(region)
	if !ok {
		return xcurrency.Unit{}, newLookupError(ErrCurrencyNotFound, "no currency found for the locale %q", locale)
	}
	return unit, nil
}

// With returns a copy of c with opts applied on top of its settings.
func (c *Currency) With(opts ...Option) (*Currency, error) {
	return c.WithContext(context.Background(), opts...)
}

// WithContext is With with a context used for cache lookups.
func (c *Currency) WithContext(ctx context.Context, opts ...Option) (*Currency, error) {
	if len(opts) == 0 {
		return c, nil
	}
	s := c.settings
	for _, opt := range opts {
		opt(&s)
	}
	return build(ctx, s)
}

// Locale returns the normalized locale, e.g. "de_AT".
func (c *Currency) Locale() string { return c.locale }

// Tag returns the language tag of the locale.
func (c *Currency) Tag() language.Tag { return c.tag }

// Code returns the ISO 4217 code, e.g. "EUR".
func (c *Currency) Code() string { return c.unit.String() }

// Symbol returns the symbol printed with UseSymbol.
func (c *Currency) Symbol() string {
	if c.settings.hasSymbol {
		return c.settings.symbol
	}
	return c.symbol
}

func (c *Currency) Precision() int { return c.precision }

func (c *Currency) Display() Display { return c.settings.display }

func (c *Currency) Position() Position { return c.settings.position }

func (c *Currency) NumberFormat() NumberFormat { return c.format }

func (c *Currency) String() string {
	return c.locale + " " + c.unit.String()
}

// Format renders amount. Options apply to this call only.
func (c *Currency) Format(amount float64, opts ...Option) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	cur, err := c.With(opts...)
	if err != nil {
		return "", err
	}
	return cur.render(amount), nil
}

// ToCurrency formats any number or numeric string.
func (c *Currency) ToCurrency(value any, opts ...Option) (string, error) {
	amount, err := ParseAmount(value)
	if err != nil {
		return "", err
	}
	return c.Format(amount, opts...)
}

func (c *Currency) render(amount float64) string {
	number, negative := formatNumber(amount, c.precision, c.format)

	var label, spacing string
	switch c.settings.display {
	case NoSymbol:
	case UseShortName:
		label = c.unit.String()
		spacing = c.format.Spacing
		if spacing == "" {
			spacing = " "
		}
	default:
		label = c.Symbol()
		spacing = c.format.Spacing
	}

	out := number
	if label != "" {
		first := c.format.SymbolFirst
		switch c.settings.position {
		case Left:
			first = true
		case Right:
			first = false
		}
		if first {
			out = label + spacing + number
		} else {
			out = number + spacing + label
		}
	}

	if negative {
		return "-" + out
	}
	return out
}

// ParseAmount converts numbers and numeric strings to float64.
func ParseAmount(value any) (float64, error) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, v)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidAmount, value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, value)
	}
	return f, nil
}
