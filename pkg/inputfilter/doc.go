// Package inputfilter validates and filters named values.
//
// An Input owns one value, a chain of Filters applied before validation and a
// chain of validator.Validator values. An InputFilter groups inputs and nested
// input filters by name, in insertion order, and mirrors the fieldset tree of
// a form:
//
//	f := inputfilter.New()
//	_ = f.Add(inputfilter.NewInput("username").
//		SetRequired(true).
//		AddFilter(inputfilter.Trim("")).
//		AddValidator(validator.NewAlnum(), true), "")
//
//	f.SetData(map[string]any{"username": " jane "})
//	ok, err := f.IsValid()
//	values := f.Values() // map[username:jane]
//
// Empty values are valid unless the input is required. A required input with
// a missing or empty value fails with the validator.IsEmpty message, unless
// SetAllowEmpty is on.
//
// # Factory
//
// Factory builds inputs and input filters from InputSpec and InputFilterSpec
// values, resolving validators and filters by name:
//
//	factory := inputfilter.NewFactory()
//	in, err := factory.CreateInput(inputfilter.InputSpec{
//		Name:     "email",
//		Required: true,
//		Filters:  []inputfilter.FilterSpec{{Name: "trim"}},
//		Validators: []inputfilter.ValidatorSpec{{Name: "email"}},
//	})
//
// Built-in validators: alnum, not_empty, string_length, regex, in_array,
// identical, between, required, min_len, max_len, email, url, uuid and
// currency_code. Built-in filters:
// trim, to_lower, to_upper, strip_tags, strip_newlines, alnum, digits, int,
// float and boolean. Custom ones are added with RegisterValidator and
// RegisterFilter.
package inputfilter
