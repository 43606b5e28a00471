package inputfilter_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/inputfilter"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

type staticTranslator map[string]string

func (s staticTranslator) T(_ string, key string, _ ...string) string {
	if msg, ok := s[key]; ok {
		return msg
	}
	return key
}

func TestFactory_CreateInput(t *testing.T) {
	t.Parallel()

	f := inputfilter.NewFactory()
	in, err := f.CreateInput(inputfilter.InputSpec{
		Name:     "username",
		Required: true,
		Filters:  []inputfilter.FilterSpec{{Name: "trim"}, {Name: "to_lower"}},
		Validators: []inputfilter.ValidatorSpec{
			{Name: "string_length", Options: inputfilter.Options{"min": 3, "max": 12}, BreakChainOnFailure: true},
			{Name: "alnum", Messages: map[string]string{validator.NotAlnum: "letters and digits only"}},
		},
	})
	require.NoError(t, err)
	assert.True(t, in.Required())
	assert.Len(t, in.Filters(), 2)
	assert.Len(t, in.Validators(), 2)

	in.SetValue(" JaneDoe ")
	assert.True(t, in.IsValid())
	assert.Equal(t, "janedoe", in.Value())

	in.SetValue("jane doe")
	assert.False(t, in.IsValid())
	assert.Equal(t, "letters and digits only", in.Messages()[validator.NotAlnum])
}

func TestFactory_Errors(t *testing.T) {
	t.Parallel()

	f := inputfilter.NewFactory()

	_, err := f.CreateInput(inputfilter.InputSpec{})
	assert.ErrorIs(t, err, inputfilter.ErrEmptyName)

	_, err = f.CreateInput(inputfilter.InputSpec{Name: "a", Validators: []inputfilter.ValidatorSpec{{Name: "nope"}}})
	assert.ErrorIs(t, err, inputfilter.ErrUnknownValidator)

	_, err = f.CreateInput(inputfilter.InputSpec{Name: "a", Filters: []inputfilter.FilterSpec{{Name: "nope"}}})
	assert.ErrorIs(t, err, inputfilter.ErrUnknownFilter)

	_, err = f.CreateValidator(inputfilter.ValidatorSpec{Name: "regex"})
	assert.ErrorIs(t, err, inputfilter.ErrInvalidOption)

	_, err = f.CreateValidator(inputfilter.ValidatorSpec{Name: "regex", Options: inputfilter.Options{"pattern": "("}})
	assert.ErrorIs(t, err, validator.ErrInvalidPattern)

	_, err = f.CreateValidator(inputfilter.ValidatorSpec{Name: "string_length", Options: inputfilter.Options{"min": "x"}})
	assert.ErrorIs(t, err, inputfilter.ErrInvalidOption)

	_, err = f.CreateValidator(inputfilter.ValidatorSpec{Name: "alnum", Messages: map[string]string{"nope": "x"}})
	assert.ErrorIs(t, err, validator.ErrUnknownMessageKey)

	_, err = f.CreateValidator(inputfilter.ValidatorSpec{Name: "email", Messages: map[string]string{"email": "x"}})
	assert.ErrorIs(t, err, inputfilter.ErrInvalidOption)
}

func TestFactory_RuleValidators(t *testing.T) {
	t.Parallel()

	f := inputfilter.NewFactory()
	tests := []struct {
		name  string
		spec  inputfilter.ValidatorSpec
		value string
		valid bool
		key   string
	}{
		{"required", inputfilter.ValidatorSpec{Name: "required"}, "  ", false, "required"},
		{"min_len counts runes", inputfilter.ValidatorSpec{Name: "min_len", Options: inputfilter.Options{"min": 3}}, "äöü", true, ""},
		{"min_len too short", inputfilter.ValidatorSpec{Name: "min_len", Options: inputfilter.Options{"min": 3}}, "ab", false, "min_length"},
		{"max_len too long", inputfilter.ValidatorSpec{Name: "max_len", Options: inputfilter.Options{"max": 2}}, "abc", false, "max_length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v, err := f.CreateValidator(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, v.IsValid(tt.value))
			if tt.key != "" {
				assert.Contains(t, v.Messages(), tt.key)
			}
		})
	}

	_, err := f.CreateValidator(inputfilter.ValidatorSpec{Name: "max_len"})
	assert.ErrorIs(t, err, inputfilter.ErrInvalidOption)
}

func TestFactory_Register(t *testing.T) {
	t.Parallel()

	f := inputfilter.NewFactory()
	assert.False(t, f.HasValidator("even"))

	f.RegisterValidator("even", func(inputfilter.Options) (validator.Validator, error) {
		return validator.NewRegex(`^\d*[02468]$`)
	})
	f.RegisterFilter("fail", func(inputfilter.Options) (inputfilter.Filter, error) {
		return nil, errors.New("broken")
	})
	assert.True(t, f.HasValidator("even"))
	assert.True(t, f.HasFilter("fail"))

	v, err := f.CreateValidator(inputfilter.ValidatorSpec{Name: "even"})
	require.NoError(t, err)
	assert.True(t, v.IsValid("42"))
	assert.False(t, v.IsValid("43"))

	_, err = f.CreateFilter(inputfilter.FilterSpec{Name: "fail"})
	assert.EqualError(t, err, `filter "fail": broken`)

	// registries are per factory
	assert.False(t, inputfilter.NewFactory().HasValidator("even"))
}

func TestFactory_Translator(t *testing.T) {
	t.Parallel()

	f := inputfilter.NewFactory(inputfilter.WithTranslator(staticTranslator{
		"validator.isEmpty":  "Pflichtfeld",
		"validator.notAlnum": "Nur Buchstaben und Ziffern",
	}, "de"))

	in, err := f.CreateInput(inputfilter.InputSpec{
		Name:       "name",
		Required:   true,
		Validators: []inputfilter.ValidatorSpec{{Name: "alnum"}},
	})
	require.NoError(t, err)

	assert.False(t, in.IsValid())
	assert.Equal(t, "Pflichtfeld", in.Messages()[validator.IsEmpty])

	in.SetValue("a b")
	assert.False(t, in.IsValid())
	assert.Equal(t, "Nur Buchstaben und Ziffern", in.Messages()[validator.NotAlnum])
}

func TestFactory_CreateInputFilterFromYAML(t *testing.T) {
	t.Parallel()

	doc := `
inputs:
  email:
    required: true
    filters:
      - name: trim
    validators:
      - name: email
  plan:
    validators:
      - name: in_array
        options:
          haystack: [basic, pro]
nested:
  billing:
    inputs:
      currency:
        required: true
        filters:
          - name: to_upper
        validators:
          - name: currency_code
      amount:
        filters:
          - name: float
        validators:
          - name: between
            options: {min: 1, max: 1000}
`
	var spec inputfilter.InputFilterSpec
	require.NoError(t, yaml.Unmarshal([]byte(doc), &spec))

	f, err := inputfilter.NewFactory().CreateInputFilter(spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"email", "plan", "billing"}, f.Names())

	billing, ok := f.Nested("billing")
	require.True(t, ok)
	assert.Equal(t, []string{"amount", "currency"}, billing.Names())

	f.SetData(map[string]any{
		"email": " jane@example.com ",
		"plan":  "pro",
		"billing": map[string]any{
			"currency": "eur",
			"amount":   "49.90",
		},
	})
	valid, err := f.IsValid()
	require.NoError(t, err)
	assert.True(t, valid, "%v", f.Messages())
	assert.Equal(t, map[string]any{
		"email": "jane@example.com",
		"plan":  "pro",
		"billing": map[string]any{
			"currency": "EUR",
			"amount":   49.9,
		},
	}, f.Values())

	f.SetData(map[string]any{
		"email":   "jane",
		"plan":    "gold",
		"billing": map[string]any{"currency": "qqq", "amount": "5000"},
	})
	valid, err = f.IsValid()
	require.NoError(t, err)
	assert.False(t, valid)

	verrs := validator.ExtractValidationErrors(f.Err())
	assert.Equal(t, []string{"email", "plan", "billing.amount", "billing.currency"}, verrs.Fields())
}
