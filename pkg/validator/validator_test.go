package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

type mapTranslator map[string]string

func (m mapTranslator) T(lang, key string, args ...string) string {
	msg, ok := m[lang+":"+key]
	if !ok {
		return key
	}
	for i := 0; i+1 < len(args); i += 2 {
		msg = strings.ReplaceAll(msg, "%{"+args[i]+"}", args[i+1])
	}
	return msg
}

func TestBase_Translation(t *testing.T) {
	t.Parallel()

	tr := mapTranslator{
		"de:validator.notAlnum": "Der Wert '%{value}' enthält ungültige Zeichen",
	}

	v := validator.NewAlnum()
	v.SetTranslator(tr, "de")

	assert.False(t, v.IsValid("a#"))
	assert.Equal(t, "Der Wert 'a#' enthält ungültige Zeichen", v.Messages()[validator.NotAlnum])

	// missing translation falls back to the template
	assert.False(t, v.IsValid(""))
	assert.Equal(t, "The input is an empty string", v.Messages()[validator.AlnumStringEmpty])
}

func TestBase_ValueObscuredAndLength(t *testing.T) {
	t.Parallel()

	v, err := validator.NewRegex(`^\d+$`)
	require.NoError(t, err)

	v.SetValueObscured(true)
	require.NoError(t, v.SetMessage(validator.RegexNotMatch, "bad value %value%"))
	assert.False(t, v.IsValid("secret"))
	assert.Equal(t, "bad value ******", v.Messages()[validator.RegexNotMatch])

	v.SetValueObscured(false)
	v.SetMessageLength(8)
	assert.False(t, v.IsValid("secret"))
	assert.Equal(t, "bad v...", v.Messages()[validator.RegexNotMatch])

	for n, want := range map[int]string{1: "b", 2: "ba", 3: "bad", 4: "b..."} {
		v.SetMessageLength(n)
		assert.False(t, v.IsValid("secret"))
		assert.Equal(t, want, v.Messages()[validator.RegexNotMatch], "length %d", n)
	}
}

func TestNotEmpty(t *testing.T) {
	t.Parallel()

	v := validator.NewNotEmpty()
	assert.False(t, v.IsValid(nil))
	assert.False(t, v.IsValid(""))
	assert.False(t, v.IsValid("   "))
	assert.False(t, v.IsValid([]string{}))
	assert.Equal(t, "Value is required and can't be empty", v.Messages()[validator.IsEmpty])

	assert.True(t, v.IsValid("x"))
	assert.True(t, v.IsValid(0))
	assert.True(t, v.IsValid(false))
	assert.True(t, v.IsValid([]string{"a"}))

	assert.True(t, validator.IsEmptyValue(""))
	assert.False(t, validator.IsEmptyValue("a"))
}

func TestStringLength(t *testing.T) {
	t.Parallel()

	v := validator.NewStringLength(2, 4)
	assert.True(t, v.IsValid("ab"))
	assert.True(t, v.IsValid("äöüß"))

	assert.False(t, v.IsValid("a"))
	assert.Equal(t, "The input is less than 2 characters long", v.Messages()[validator.TooShort])

	assert.False(t, v.IsValid("abcde"))
	assert.Equal(t, "The input is more than 4 characters long", v.Messages()[validator.TooLong])

	assert.False(t, v.IsValid(12))
	assert.Contains(t, v.Messages(), validator.StringLengthInvalid)

	unbounded := validator.NewStringLength(1, 0)
	assert.True(t, unbounded.IsValid("a very long value indeed"))
}

func TestRegex(t *testing.T) {
	t.Parallel()

	_, err := validator.NewRegex(`(`)
	require.ErrorIs(t, err, validator.ErrInvalidPattern)

	v, err := validator.NewRegex(`^[a-z]+$`)
	require.NoError(t, err)
	assert.Equal(t, `^[a-z]+$`, v.Pattern())
	assert.True(t, v.IsValid("abc"))
	assert.False(t, v.IsValid("ABC"))
	assert.Equal(t, "The input does not match against pattern '^[a-z]+$'", v.Messages()[validator.RegexNotMatch])
}

func TestInArray(t *testing.T) {
	t.Parallel()

	v := validator.NewInArray("basic", "pro")
	assert.True(t, v.IsValid("pro"))
	assert.False(t, v.IsValid("enterprise"))
	assert.Contains(t, v.Messages(), validator.NotInArray)

	assert.True(t, v.IsValid([]string{"basic", "pro"}))
	assert.False(t, v.IsValid([]string{"basic", "gold"}))
}

func TestIdentical(t *testing.T) {
	t.Parallel()

	v := validator.NewIdentical("")
	assert.False(t, v.IsValid("x"))
	assert.Contains(t, v.Messages(), validator.MissingToken)

	v.SetToken("token-1")
	assert.True(t, v.IsValid("token-1"))
	assert.False(t, v.IsValid("token-2"))
	assert.Equal(t, "The two given tokens do not match", v.Messages()[validator.NotSame])
}

func TestBetween(t *testing.T) {
	t.Parallel()

	v := validator.NewBetween(1, 10, true)
	assert.True(t, v.IsValid(1))
	assert.True(t, v.IsValid("10"))
	assert.False(t, v.IsValid(11))
	assert.Equal(t, "The input is not between '1' and '10', inclusively", v.Messages()[validator.NotBetween])
	assert.False(t, v.IsValid("ten"))
	assert.Contains(t, v.Messages(), validator.ValueNotNumeric)

	strict := validator.NewBetween(1, 10, false)
	assert.False(t, strict.IsValid(1))
	assert.Contains(t, strict.Messages(), validator.NotBetweenStrict)
	assert.True(t, strict.IsValid(5.5))
}

func TestRuleValidator(t *testing.T) {
	t.Parallel()

	v := validator.NewRuleValidator(validator.ValidEmail)
	assert.True(t, v.IsValid("jane@example.com"))
	assert.False(t, v.IsValid("jane"))
	assert.Equal(t, validator.Messages{"email": "must be a valid email address"}, v.Messages())

	assert.False(t, v.IsValid([]int{1}))
	assert.Contains(t, v.Messages(), validator.RuleInvalid)

	v.SetTranslator(mapTranslator{"de:validation.email": "ungültige E-Mail"}, "de")
	assert.False(t, v.IsValid("jane"))
	assert.Equal(t, "ungültige E-Mail", v.Messages()["email"])
}
