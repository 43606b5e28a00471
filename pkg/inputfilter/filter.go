package inputfilter

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

// Filter transforms a raw value before validation.
type Filter interface {
	Filter(value any) any
}

// FilterFunc adapts a function to the Filter interface.
type FilterFunc func(value any) any

func (fn FilterFunc) Filter(value any) any { return fn(value) }

// StringFilter applies fn to strings and to every element of []string.
// Other values pass through unchanged.
func StringFilter(fn func(string) string) Filter {
	return FilterFunc(func(value any) any {
		switch v := value.(type) {
		case string:
			return fn(v)
		case []string:
			out := make([]string, len(v))
			for i, s := range v {
				out[i] = fn(s)
			}
			return out
		}
		return value
	})
}

// Trim removes leading and trailing whitespace, or the given cutset when not empty.
func Trim(cutset string) Filter {
	if cutset == "" {
		return StringFilter(strings.TrimSpace)
	}
	return StringFilter(func(s string) string { return strings.Trim(s, cutset) })
}

func ToLower() Filter { return StringFilter(strings.ToLower) }

func ToUpper() Filter { return StringFilter(strings.ToUpper) }

// StripTags removes all markup using a strict bluemonday policy.
// Script and style contents are dropped together with their tags.
func StripTags() Filter {
	return sanitize(bluemonday.StrictPolicy())
}

// StripUnsafeTags keeps user generated content markup and removes everything unsafe.
func StripUnsafeTags() Filter {
	return sanitize(bluemonday.UGCPolicy())
}

func sanitize(p *bluemonday.Policy) Filter {
	return StringFilter(func(s string) string {
		return strings.TrimSpace(p.Sanitize(s))
	})
}

func StripNewlines() Filter {
	return StringFilter(func(s string) string {
		return strings.Map(func(r rune) rune {
			if r == '\n' || r == '\r' {
				return -1
			}
			return r
		}, s)
	})
}

// Alnum keeps letters and digits, plus whitespace when allowWhiteSpace is set.
func Alnum(allowWhiteSpace bool) Filter {
	return StringFilter(func(s string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsNumber(r) || (allowWhiteSpace && unicode.IsSpace(r)) {
				return r
			}
			return -1
		}, s)
	})
}

func Digits() Filter {
	return StringFilter(func(s string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsDigit(r) {
				return r
			}
			return -1
		}, s)
	})
}

// ToInt converts numeric strings to int. Unparsable values pass through so
// validators can report them.
func ToInt() Filter {
	return FilterFunc(func(value any) any {
		switch v := value.(type) {
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n
			}
		case float64:
			return int(v)
		case int64:
			return int(v)
		}
		return value
	})
}

// ToFloat converts numeric strings and integers to float64.
func ToFloat() Filter {
	return FilterFunc(func(value any) any {
		switch v := value.(type) {
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return f
			}
		case int:
			return float64(v)
		case int64:
			return float64(v)
		}
		return value
	})
}

// ToBool understands strconv.ParseBool forms plus on/off and yes/no.
// An empty string is false.
func ToBool() Filter {
	return FilterFunc(func(value any) any {
		s, ok := value.(string)
		if !ok {
			return value
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "", "off", "no":
			return false
		case "on", "yes":
			return true
		}
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return b
		}
		return value
	})
}
