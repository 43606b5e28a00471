package inputfilter

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// ErrorMessageKey is the message key used when an input has a custom error message.
const ErrorMessageKey = "error"

type chainedValidator struct {
	validator  validator.Validator
	breakChain bool
}

// Input is a single named value with a filter chain and a validator chain.
//
// Filters run in insertion order before validation. Validators also run in
// insertion order; one added with breakChain stops the chain when it fails.
type Input struct {
	name           string
	required       bool
	allowEmpty     bool
	breakOnFailure bool
	errorMessage   string

	filters    []Filter
	validators []chainedValidator
	notEmpty   *validator.NotEmpty

	raw      any
	hasValue bool
	messages validator.Messages
}

func NewInput(name string) *Input {
	return &Input{
		name:     name,
		notEmpty: validator.NewNotEmpty(),
		messages: validator.Messages{},
	}
}

func (i *Input) Name() string { return i.name }

// SetRequired marks the input as required. A required input fails with the
// validator.IsEmpty message when its value is missing or empty.
func (i *Input) SetRequired(required bool) *Input {
	i.required = required
	return i
}

func (i *Input) Required() bool { return i.required }

// SetAllowEmpty lets a required input accept an empty value.
func (i *Input) SetAllowEmpty(allow bool) *Input {
	i.allowEmpty = allow
	return i
}

func (i *Input) AllowEmpty() bool { return i.allowEmpty }

// SetBreakOnFailure stops the owning InputFilter from validating further
// entries once this input fails.
func (i *Input) SetBreakOnFailure(brk bool) *Input {
	i.breakOnFailure = brk
	return i
}

func (i *Input) BreakOnFailure() bool { return i.breakOnFailure }

// SetErrorMessage replaces every failure message with msg.
func (i *Input) SetErrorMessage(msg string) *Input {
	i.errorMessage = msg
	return i
}

func (i *Input) ErrorMessage() string { return i.errorMessage }

// SetTranslator translates the required-value message.
func (i *Input) SetTranslator(tr validator.Translator, lang string) *Input {
	i.notEmpty.SetTranslator(tr, lang)
	return i
}

func (i *Input) AddFilter(f Filter) *Input {
	if f != nil {
		i.filters = append(i.filters, f)
	}
	return i
}

func (i *Input) Filters() []Filter {
	return slices.Clone(i.filters)
}

func (i *Input) AddValidator(v validator.Validator, breakChain bool) *Input {
	if v != nil {
		i.validators = append(i.validators, chainedValidator{validator: v, breakChain: breakChain})
	}
	return i
}

func (i *Input) Validators() []validator.Validator {
	out := make([]validator.Validator, 0, len(i.validators))
	for _, cv := range i.validators {
		out = append(out, cv.validator)
	}
	return out
}

// SetValue sets the raw value.
func (i *Input) SetValue(v any) *Input {
	i.raw = v
	i.hasValue = true
	return i
}

// ClearValue forgets the raw value.
func (i *Input) ClearValue() *Input {
	i.raw = nil
	i.hasValue = false
	return i
}

func (i *Input) HasValue() bool { return i.hasValue }

func (i *Input) RawValue() any { return i.raw }

// Value returns the raw value passed through the filter chain.
func (i *Input) Value() any {
	v := i.raw
	for _, f := range i.filters {
		v = f.Filter(v)
	}
	return v
}

// Messages returns the failures of the last IsValid call.
func (i *Input) Messages() validator.Messages {
	return maps.Clone(i.messages)
}

func (i *Input) IsValid() bool {
	clear(i.messages)

	value := i.Value()
	empty := !i.hasValue || isEmpty(value)

	switch {
	case empty && !i.required:
		return true
	case empty && i.allowEmpty:
		return true
	case empty:
		i.notEmpty.IsValid(nil)
		i.record(i.notEmpty.Messages())
		return false
	}

	valid := true
	for _, cv := range i.validators {
		if cv.validator.IsValid(value) {
			continue
		}
		valid = false
		i.record(cv.validator.Messages())
		if cv.breakChain {
			break
		}
	}
	return valid
}

func (i *Input) record(msgs validator.Messages) {
	if i.errorMessage != "" {
		clear(i.messages)
		i.messages[ErrorMessageKey] = i.errorMessage
		return
	}
	maps.Copy(i.messages, msgs)
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []string:
		return len(val) == 0
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	}
	return false
}

func (i *Input) assign(value any, present bool) {
	if present {
		i.SetValue(value)
		return
	}
	i.ClearValue()
}

func (i *Input) validate() bool { return i.IsValid() }

func (i *Input) value() (any, bool) {
	if !i.hasValue {
		return nil, false
	}
	return i.Value(), true
}

func (i *Input) rawValue() (any, bool) {
	return i.raw, i.hasValue
}

func (i *Input) messageTree() (any, bool) {
	if len(i.messages) == 0 {
		return nil, false
	}
	return i.Messages(), true
}

func (i *Input) collectErrors(path string, out *validator.ValidationErrors) {
	keys := slices.Sorted(maps.Keys(i.messages))
	for _, key := range keys {
		out.Add(validator.ValidationError{
			Field:          path,
			Message:        i.messages[key],
			TranslationKey: validator.TranslationPrefix + key,
			TranslationValues: map[string]any{
				"field": path,
			},
		})
	}
}

func (i *Input) stopsChain() bool { return i.breakOnFailure }
