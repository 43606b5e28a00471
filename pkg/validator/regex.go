package validator

import (
	"errors"
	"regexp"
)

// Message keys reported by Regex.
const (
	RegexInvalid  = "regexInvalid"
	RegexNotMatch = "regexNotMatch"
)

var regexTemplates = map[string]string{
	RegexInvalid:  "Invalid type given. String, integer or float expected",
	RegexNotMatch: "The input does not match against pattern '%pattern%'",
}

// Regex matches values against a compiled pattern.
type Regex struct {
	Base
	pattern *regexp.Regexp
}

// NewRegex compiles pattern and returns ErrInvalidPattern when it does not compile.
func NewRegex(pattern string) (*Regex, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Join(ErrInvalidPattern, err)
	}
	return &Regex{Base: newBase(regexTemplates), pattern: re}, nil
}

func (v *Regex) Pattern() string {
	return v.pattern.String()
}

func (v *Regex) IsValid(value any) bool {
	v.reset()

	s, ok := scalarString(value)
	if !ok {
		v.fail(RegexInvalid, value)
		return false
	}
	if !v.pattern.MatchString(s) {
		v.fail(RegexNotMatch, s, "pattern", v.pattern.String())
		return false
	}
	return true
}
