package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/inputfilter"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

type signupAddress struct {
	Zip  int    `form:"zip" validate:"gte=1000"`
	City string `form:"city"`
}

type signupInput struct {
	Email    string         `form:"email" validate:"required,email"`
	Plan     string         `form:"plan"`
	Seats    int            `form:"seats" validate:"min=1"`
	Tags     []string       `form:"tags"`
	Address  signupAddress  `form:"address"`
	Billing  *signupAddress `form:"billing"`
	Internal string         `form:"-"`
	Note     string
}

func validatedForm(t *testing.T, data map[string]any) *form.Form {
	t.Helper()

	filter, err := inputfilter.NewFactory().CreateInputFilter(inputfilter.InputFilterSpec{
		Inputs: map[string]inputfilter.InputSpec{
			"email":    {Required: true, Filters: []inputfilter.FilterSpec{{Name: "trim"}}},
			"plan":     {},
			"seats":    {Filters: []inputfilter.FilterSpec{{Name: "int"}}},
			"tags":     {},
			"internal": {},
			"note":     {},
		},
		Nested: map[string]inputfilter.InputFilterSpec{
			"address": {Inputs: map[string]inputfilter.InputSpec{
				"zip":  {Filters: []inputfilter.FilterSpec{{Name: "float"}}},
				"city": {},
			}},
			"billing": {Inputs: map[string]inputfilter.InputSpec{
				"zip": {},
			}},
		},
	})
	require.NoError(t, err)

	f := form.New("signup", form.WithInputFilter(filter))
	f.SetData(data)
	valid, err := f.IsValid()
	require.NoError(t, err)
	require.True(t, valid)
	return f
}

func TestForm_Bind(t *testing.T) {
	t.Parallel()

	t.Run("hydrates nested structs", func(t *testing.T) {
		t.Parallel()
		f := validatedForm(t, map[string]any{
			"email":    " jane@example.com ",
			"plan":     "pro",
			"seats":    "3",
			"tags":     []string{"a", "b"},
			"internal": "secret",
			"note":     "hello",
			"address":  map[string]any{"zip": "1010", "city": "Vienna"},
			"billing":  map[string]any{"zip": "2000"},
		})

		var in signupInput
		require.NoError(t, f.Bind(&in))
		assert.Equal(t, "jane@example.com", in.Email)
		assert.Equal(t, "pro", in.Plan)
		assert.Equal(t, 3, in.Seats)
		assert.Equal(t, []string{"a", "b"}, in.Tags)
		assert.Equal(t, signupAddress{Zip: 1010, City: "Vienna"}, in.Address)
		require.NotNil(t, in.Billing)
		assert.Equal(t, 2000, in.Billing.Zip)
		assert.Empty(t, in.Internal)
		assert.Equal(t, "hello", in.Note)
	})

	t.Run("struct tags are validated", func(t *testing.T) {
		t.Parallel()
		f := validatedForm(t, map[string]any{
			"email":   "jane@example.com",
			"seats":   "0",
			"address": map[string]any{"zip": "999"},
		})

		var in signupInput
		err := f.Bind(&in)
		require.Error(t, err)
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.True(t, verrs.Has("seats"))
		assert.True(t, verrs.Has("address.zip"))
	})

	t.Run("conversion failure", func(t *testing.T) {
		t.Parallel()
		f := validatedForm(t, map[string]any{"email": "jane@example.com", "seats": "many"})

		var in signupInput
		assert.ErrorIs(t, f.Bind(&in), form.ErrBindFailed)
	})

	t.Run("invalid targets", func(t *testing.T) {
		t.Parallel()
		f := validatedForm(t, map[string]any{"email": "jane@example.com"})

		var in signupInput
		assert.ErrorIs(t, f.Bind(in), form.ErrInvalidBindTarget)
		assert.ErrorIs(t, f.Bind((*signupInput)(nil)), form.ErrInvalidBindTarget)
		s := "x"
		assert.ErrorIs(t, f.Bind(&s), form.ErrInvalidBindTarget)
	})

	t.Run("requires successful validation", func(t *testing.T) {
		t.Parallel()
		f := form.New("signup")
		var in signupInput
		assert.ErrorIs(t, f.Bind(&in), form.ErrNotValidated)
	})

	t.Run("base fieldset", func(t *testing.T) {
		t.Parallel()
		user := form.NewFieldset("user")
		user.SetUseAsBaseFieldset(true)
		require.NoError(t, user.Add(form.NewEmail("email")))

		f := form.New("signup")
		require.NoError(t, f.Add(user))
		f.SetData(map[string]any{"user": map[string]any{"email": "jane@example.com"}})
		valid, err := f.IsValid()
		require.NoError(t, err)
		require.True(t, valid)

		var in struct {
			Email string `form:"email" validate:"required"`
		}
		require.NoError(t, f.Bind(&in))
		assert.Equal(t, "jane@example.com", in.Email)
	})
}
