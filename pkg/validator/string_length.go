package validator

import (
	"strconv"
	"unicode/utf8"
)

// Message keys reported by StringLength.
const (
	StringLengthInvalid = "stringLengthInvalid"
	TooShort            = "stringLengthTooShort"
	TooLong             = "stringLengthTooLong"
)

var stringLengthTemplates = map[string]string{
	StringLengthInvalid: "Invalid type given. String expected",
	TooShort:            "The input is less than %min% characters long",
	TooLong:             "The input is more than %max% characters long",
}

// StringLength bounds the number of characters (runes) in a string.
// A zero max means no upper bound.
type StringLength struct {
	Base
	min int
	max int
}

func NewStringLength(min, max int) *StringLength {
	return &StringLength{
		Base: newBase(stringLengthTemplates),
		min:  min,
		max:  max,
	}
}

func (v *StringLength) Min() int { return v.min }
func (v *StringLength) Max() int { return v.max }

func (v *StringLength) IsValid(value any) bool {
	v.reset()

	s, ok := value.(string)
	if !ok {
		v.fail(StringLengthInvalid, value)
		return false
	}

	n := utf8.RuneCountInString(s)
	if n < v.min {
		v.fail(TooShort, s, "min", strconv.Itoa(v.min), "max", strconv.Itoa(v.max))
		return false
	}
	if v.max > 0 && n > v.max {
		v.fail(TooLong, s, "min", strconv.Itoa(v.min), "max", strconv.Itoa(v.max))
		return false
	}
	return true
}
