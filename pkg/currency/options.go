package currency

// Display selects what is printed next to the amount.
type Display int

const (
	// UseSymbol prints the locale's currency symbol, e.g. "€".
	UseSymbol Display = iota
	// UseShortName prints the ISO 4217 code, e.g. "EUR".
	UseShortName
	// NoSymbol prints the number only.
	NoSymbol
)

// Position places the symbol relative to the number.
type Position int

const (
	// Standard follows the locale's pattern.
	Standard Position = iota
	Left
	Right
)

type settings struct {
	locale    string
	code      string
	symbol    string
	hasSymbol bool
	display   Display
	position  Position
	precision int
}

// Option adjusts a Currency. Options are applied in order on top of the
// settings of the currency they are used with.
type Option func(*settings)

// WithLocale switches the locale. Unless a currency was chosen with
// WithCurrency, the currency follows the new locale's region.
func WithLocale(locale string) Option {
	return func(s *settings) {
		s.locale = locale
	}
}

// WithCurrency selects a currency by ISO 4217 code, independent of the locale.
func WithCurrency(code string) Option {
	return func(s *settings) {
		s.code = code
	}
}

// WithSymbol overrides the symbol printed with UseSymbol.
func WithSymbol(symbol string) Option {
	return func(s *settings) {
		s.symbol = symbol
		s.hasSymbol = true
	}
}

func WithDisplay(d Display) Option {
	return func(s *settings) {
		s.display = d
	}
}

func WithPosition(p Position) Option {
	return func(s *settings) {
		s.position = p
	}
}

// WithPrecision sets the number of decimals. A negative value restores the
// currency's standard precision; more than 15 decimals is rejected with
// ErrInvalidPrecision.
func WithPrecision(n int) Option {
	return func(s *settings) {
		s.precision = max(n, -1)
	}
}
