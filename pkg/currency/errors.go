package currency

import (
	"errors"
	"fmt"
)

var (
	ErrLocaleNotFound   = errors.New("locale not found")
	ErrRegionNotFound   = errors.New("no region found within the locale")
	ErrCurrencyNotFound = errors.New("currency not found")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidPrecision = errors.New("invalid precision")
)

// lookupError carries a formatted message while matching its sentinel with errors.Is.
type lookupError struct {
	sentinel error
	msg      string
}

func (e *lookupError) Error() string { return e.msg }

func (e *lookupError) Unwrap() error { return e.sentinel }

func newLookupError(sentinel error, format string, args ...any) error {
	return &lookupError{sentinel: sentinel, msg: fmt.Sprintf(format, args...)}
}
