package validator

import "crypto/subtle"

// Message keys reported by Identical.
const (
	NotSame      = "notSame"
	MissingToken = "missingToken"
)

var identicalTemplates = map[string]string{
	NotSame:      "The two given tokens do not match",
	MissingToken: "No token was provided to match against",
}

// Identical compares the value with a fixed token in constant time.
type Identical struct {
	Base
	token string
}

func NewIdentical(token string) *Identical {
	return &Identical{Base: newBase(identicalTemplates), token: token}
}

func (v *Identical) Token() string {
	return v.token
}

// SetToken replaces the token to match against.
func (v *Identical) SetToken(token string) {
	v.token = token
}

func (v *Identical) IsValid(value any) bool {
	v.reset()

	if v.token == "" {
		v.fail(MissingToken, value)
		return false
	}

	s, ok := scalarString(value)
	if !ok || subtle.ConstantTimeCompare([]byte(s), []byte(v.token)) != 1 {
		v.fail(NotSame, value)
		return false
	}
	return true
}
