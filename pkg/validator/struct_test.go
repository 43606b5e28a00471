package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

type addressInput struct {
	City string `form:"city" validate:"required"`
	Zip  string `form:"zip" validate:"omitempty,len=5"`
}

type signupInput struct {
	Email    string       `form:"email" validate:"required,email"`
	Username string       `form:"username" validate:"required,alphanum,min=3"`
	Age      int          `form:"age" validate:"gte=18"`
	Address  addressInput `form:"address"`
	Internal string       `form:"-"`
}

func TestStruct(t *testing.T) {
	t.Parallel()

	t.Run("valid struct", func(t *testing.T) {
		in := signupInput{
			Email:    "jane@example.com",
			Username: "jane",
			Age:      30,
			Address:  addressInput{City: "Vienna"},
		}
		assert.NoError(t, validator.Struct(in))
		assert.NoError(t, validator.Struct(&in))
	})

	t.Run("failures use form paths", func(t *testing.T) {
		in := signupInput{
			Email:    "not-an-email",
			Username: "j!",
			Age:      12,
			Address:  addressInput{Zip: "123"},
		}

		err := validator.Struct(in)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.True(t, verrs.Has("email"))
		assert.True(t, verrs.Has("username"))
		assert.True(t, verrs.Has("age"))
		assert.True(t, verrs.Has("address.city"))
		assert.True(t, verrs.Has("address.zip"))

		ageErr := verrs.GetErrors("age")
		require.Len(t, ageErr, 1)
		assert.Equal(t, "validation.gte", ageErr[0].TranslationKey)
		assert.Equal(t, "18", ageErr[0].TranslationValues["param"])
	})

	t.Run("non struct target", func(t *testing.T) {
		err := validator.Struct("nope")
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrInvalidTarget)
		assert.False(t, validator.IsValidationError(err))
	})
}
