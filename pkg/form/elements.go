package form

import (
	"slices"

	"github.com/dmitrymomot/formkit/pkg/inputfilter"
)

var (
	_ Element       = (*Text)(nil)
	_ InputProvider = (*Email)(nil)
	_ InputProvider = (*Number)(nil)
	_ InputProvider = (*Select)(nil)
	_ InputProvider = (*Checkbox)(nil)
)

type Text struct{ Base }

func NewText(name string, opts ...ElementOption) *Text {
	return &Text{Base: NewBase(name, "text", opts...)}
}

type Textarea struct{ Base }

func NewTextarea(name string, opts ...ElementOption) *Textarea {
	return &Textarea{Base: NewBase(name, "textarea", opts...)}
}

type Hidden struct{ Base }

func NewHidden(name string, opts ...ElementOption) *Hidden {
	return &Hidden{Base: NewBase(name, "hidden", opts...)}
}

type Password struct{ Base }

func NewPassword(name string, opts ...ElementOption) *Password {
	return &Password{Base: NewBase(name, "password", opts...)}
}

// Email is required by default and validates the address format.
type Email struct{ Base }

func NewEmail(name string, opts ...ElementOption) *Email {
	return &Email{Base: NewBase(name, "email", prepend(WithRequired(true), opts)...)}
}

func (e *Email) InputSpecification() inputfilter.InputSpec {
	return inputfilter.InputSpec{
		Name:     e.Name(),
		Required: e.Required(),
		Filters: []inputfilter.FilterSpec{
			{Name: "trim"},
			{Name: "strip_newlines"},
		},
		Validators: []inputfilter.ValidatorSpec{
			{Name: "email"},
		},
	}
}

// Number is required by default. The "min" and "max" attributes, when both
// set, bound the value inclusively.
type Number struct{ Base }

const numberPattern = `^-?[0-9]+(\.[0-9]+)?$`

func NewNumber(name string, opts ...ElementOption) *Number {
	return &Number{Base: NewBase(name, "number", prepend(WithRequired(true), opts)...)}
}

func (e *Number) InputSpecification() inputfilter.InputSpec {
	spec := inputfilter.InputSpec{
		Name:     e.Name(),
		Required: e.Required(),
		Filters:  []inputfilter.FilterSpec{{Name: "trim"}},
		Validators: []inputfilter.ValidatorSpec{
			{Name: "regex", Options: inputfilter.Options{"pattern": numberPattern}, BreakChainOnFailure: true},
		},
	}

	minV, hasMin := e.Attribute("min")
	maxV, hasMax := e.Attribute("max")
	if hasMin && hasMax {
		spec.Validators = append(spec.Validators, inputfilter.ValidatorSpec{
			Name:    "between",
			Options: inputfilter.Options{"min": minV, "max": maxV, "inclusive": true},
		})
	}
	return spec
}

// SelectOption is one choice of a Select.
type SelectOption struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Select is required by default and only accepts its option values.
type Select struct {
	Base
	options []SelectOption
}

func NewSelect(name string, options []SelectOption, opts ...ElementOption) *Select {
	return &Select{
		Base:    NewBase(name, "select", prepend(WithRequired(true), opts)...),
		options: slices.Clone(options),
	}
}

func (e *Select) ValueOptions() []SelectOption {
	return slices.Clone(e.options)
}

func (e *Select) SetValueOptions(options []SelectOption) {
	e.options = slices.Clone(options)
}

func (e *Select) InputSpecification() inputfilter.InputSpec {
	haystack := make([]string, 0, len(e.options))
	for _, o := range e.options {
		haystack = append(haystack, o.Value)
	}
	return inputfilter.InputSpec{
		Name:     e.Name(),
		Required: e.Required(),
		Validators: []inputfilter.ValidatorSpec{
			{Name: "in_array", Options: inputfilter.Options{"haystack": haystack}},
		},
	}
}

const (
	DefaultCheckedValue   = "1"
	DefaultUncheckedValue = "0"
)

// Checkbox accepts its checked and unchecked values only.
type Checkbox struct {
	Base
	checked   string
	unchecked string
}

func NewCheckbox(name string, opts ...ElementOption) *Checkbox {
	return &Checkbox{
		Base:      NewBase(name, "checkbox", opts...),
		checked:   DefaultCheckedValue,
		unchecked: DefaultUncheckedValue,
	}
}

// SetCheckedValues replaces the submitted values for both states.
func (e *Checkbox) SetCheckedValues(checked, unchecked string) {
	e.checked = checked
	e.unchecked = unchecked
}

func (e *Checkbox) CheckedValue() string { return e.checked }

func (e *Checkbox) UncheckedValue() string { return e.unchecked }

func (e *Checkbox) IsChecked() bool {
	s, _ := e.Value().(string)
	return s == e.checked
}

func (e *Checkbox) InputSpecification() inputfilter.InputSpec {
	return inputfilter.InputSpec{
		Name:     e.Name(),
		Required: e.Required(),
		Validators: []inputfilter.ValidatorSpec{
			{Name: "in_array", Options: inputfilter.Options{"haystack": []string{e.checked, e.unchecked}}},
		},
	}
}

func prepend(opt ElementOption, opts []ElementOption) []ElementOption {
	return append([]ElementOption{opt}, opts...)
}
