package validator

import "unicode"

// Message keys reported by Alnum.
const (
	AlnumInvalid     = "alnumInvalid"
	NotAlnum         = "notAlnum"
	AlnumStringEmpty = "alnumStringEmpty"
)

var alnumTemplates = map[string]string{
	AlnumInvalid:     "Invalid type given. String, integer or float expected",
	NotAlnum:         "The input contains characters which are non alphabetic and no digits",
	AlnumStringEmpty: "The input is an empty string",
}

// Alnum accepts values made only of letters and digits.
// Letters and digits follow Unicode classification, so "Grüße2" is valid.
type Alnum struct {
	Base
	allowWhiteSpace bool
}

// AlnumOption configures an Alnum validator.
type AlnumOption func(*Alnum)

// WithAllowWhiteSpace lets whitespace appear anywhere in the value.
func WithAllowWhiteSpace(allow bool) AlnumOption {
	return func(v *Alnum) {
		v.allowWhiteSpace = allow
	}
}

// NewAlnum creates an Alnum validator. Whitespace is rejected by default.
func NewAlnum(opts ...AlnumOption) *Alnum {
	v := &Alnum{Base: newBase(alnumTemplates)}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetAllowWhiteSpace toggles the whitespace option.
func (v *Alnum) SetAllowWhiteSpace(allow bool) *Alnum {
	v.allowWhiteSpace = allow
	return v
}

// AllowWhiteSpace reports whether whitespace is accepted.
func (v *Alnum) AllowWhiteSpace() bool {
	return v.allowWhiteSpace
}

// IsValid reports whether value contains only letters and digits.
// Strings, integers and floats are accepted; other types fail with AlnumInvalid.
// The empty string fails with AlnumStringEmpty even when whitespace is allowed.
func (v *Alnum) IsValid(value any) bool {
	v.reset()

	s, ok := scalarString(value)
	if !ok {
		v.fail(AlnumInvalid, value)
		return false
	}

	if s == "" {
		v.fail(AlnumStringEmpty, s)
		return false
	}

	for _, r := range s {
		if v.allowWhiteSpace && unicode.IsSpace(r) {
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			v.fail(NotAlnum, s)
			return false
		}
	}

	return true
}
