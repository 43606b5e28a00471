package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "Jane"),
			validator.MinLen("name", "Jane", 2),
			validator.MaxLen("name", "Jane", 10),
		)
		assert.NoError(t, err)
	})

	t.Run("failures are collected in order", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "  "),
			validator.ValidEmail("email", "nope"),
			validator.ValidEmail("email", "jane@example.com"),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"name", "email"}, verrs.Fields())
		assert.Equal(t, []string{"field is required"}, verrs.Get("name"))
		assert.True(t, verrs.Has("email"))
		assert.False(t, verrs.Has("phone"))
		assert.Equal(t, "validation.email", verrs.GetErrors("email")[0].TranslationKey)
		assert.Equal(t, "validation failed: name: field is required; email: must be a valid email address", verrs.Error())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
	assert.False(t, validator.IsValidationError(errors.New("boom")))

	wrapped := fmt.Errorf("signup: %w", validator.Apply(validator.Required("name", "")))
	assert.True(t, validator.IsValidationError(wrapped))
	assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)
}

func TestValidationErrors_Add(t *testing.T) {
	t.Parallel()

	var verrs validator.ValidationErrors
	assert.True(t, verrs.IsEmpty())
	assert.Equal(t, "validation failed", verrs.Error())

	verrs.Add(validator.ValidationError{Field: "a", Message: "bad"})
	verrs.Add(validator.ValidationError{Field: "a", Message: "worse"})
	assert.Equal(t, []string{"bad", "worse"}, verrs.Get("a"))
	assert.Equal(t, []string{"a"}, verrs.Fields())
}

func TestFromMessages(t *testing.T) {
	t.Parallel()

	verrs := validator.FromMessages("username", validator.Messages{
		validator.NotAlnum: "no symbols",
	})
	require.Len(t, verrs, 1)
	assert.Equal(t, "username", verrs[0].Field)
	assert.Equal(t, "no symbols", verrs[0].Message)
	assert.Equal(t, "validator.notAlnum", verrs[0].TranslationKey)
}

func TestFormatRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rule  validator.Rule
		valid bool
	}{
		{"email", validator.ValidEmail("f", "jane@example.com"), true},
		{"email with display name", validator.ValidEmail("f", "Jane <jane@example.com>"), false},
		{"email without tld", validator.ValidEmail("f", "jane@localhost"), false},
		{"url", validator.ValidURL("f", "https://example.com/a?b=c"), true},
		{"relative url", validator.ValidURL("f", "/path"), false},
		{"uuid", validator.ValidUUID("f", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"), true},
		{"uuid without dashes", validator.ValidUUID("f", "6ba7b8109dad11d180b400c04fd430c8"), false},
		{"currency code", validator.ValidCurrencyCode("f", "EUR"), true},
		{"lower case currency code", validator.ValidCurrencyCode("f", "eur"), false},
		{"unknown currency code", validator.ValidCurrencyCode("f", "ZZQ"), false},
		{"min len counts runes", validator.MinLen("f", "äöü", 3), true},
		{"max len counts runes", validator.MaxLen("f", "äöü", 3), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.rule.Check())
		})
	}
}
