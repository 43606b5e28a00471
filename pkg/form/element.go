package form

import (
	"maps"

	"github.com/dmitrymomot/formkit/pkg/inputfilter"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Element is a named form control.
type Element interface {
	Name() string
	SetName(name string)
	Label() string
	SetLabel(label string)
	Value() any
	SetValue(value any)
	Attributes() map[string]string
	Attribute(key string) (string, bool)
	SetAttribute(key, value string)
	Messages() validator.Messages
	SetMessages(msgs validator.Messages)
}

// InputProvider is implemented by elements that supply their own input
// specification to the form's input filter.
type InputProvider interface {
	InputSpecification() inputfilter.InputSpec
}

// InputFilterProvider is implemented by containers that supply the
// specification of their nested input filter.
type InputFilterProvider interface {
	InputFilterSpecification() inputfilter.InputFilterSpec
}

// PrepareAware elements are called from Form.Prepare.
type PrepareAware interface {
	PrepareElement(f *Form)
}

// ElementOption configures the common part of an element.
type ElementOption func(*Base)

func WithLabel(label string) ElementOption {
	return func(b *Base) {
		b.label = label
	}
}

func WithValue(value any) ElementOption {
	return func(b *Base) {
		b.value = value
	}
}

func WithAttribute(key, value string) ElementOption {
	return func(b *Base) {
		b.attrs[key] = value
	}
}

// WithAttributes merges attrs into the element attributes.
func WithAttributes(attrs map[string]string) ElementOption {
	return func(b *Base) {
		maps.Copy(b.attrs, attrs)
	}
}

// WithRequired sets or removes the "required" attribute. Input providers read
// it when building their input specification.
func WithRequired(required bool) ElementOption {
	return func(b *Base) {
		b.SetRequired(required)
	}
}

// Base implements Element. Custom elements embed it and set it up with
// NewBase.
type Base struct {
	name     string
	label    string
	value    any
	attrs    map[string]string
	messages validator.Messages
}

// NewBase returns a Base of the given HTML input type. Options are applied in
// order after the type attribute is set.
func NewBase(name, typ string, opts ...ElementOption) Base {
	b := Base{
		name:     name,
		attrs:    map[string]string{},
		messages: validator.Messages{},
	}
	if typ != "" {
		b.attrs["type"] = typ
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *Base) Name() string { return b.name }

func (b *Base) SetName(name string) { b.name = name }

func (b *Base) Label() string { return b.label }

func (b *Base) SetLabel(label string) { b.label = label }

func (b *Base) Value() any { return b.value }

func (b *Base) SetValue(value any) { b.value = value }

// Type returns the "type" attribute.
func (b *Base) Type() string { return b.attrs["type"] }

// Attributes returns a copy of the element attributes.
func (b *Base) Attributes() map[string]string {
	return maps.Clone(b.attrs)
}

func (b *Base) Attribute(key string) (string, bool) {
	v, ok := b.attrs[key]
	return v, ok
}

func (b *Base) SetAttribute(key, value string) {
	if b.attrs == nil {
		b.attrs = map[string]string{}
	}
	b.attrs[key] = value
}

func (b *Base) RemoveAttribute(key string) {
	delete(b.attrs, key)
}

func (b *Base) Required() bool {
	_, ok := b.attrs["required"]
	return ok
}

func (b *Base) SetRequired(required bool) {
	if required {
		b.SetAttribute("required", "required")
		return
	}
	b.RemoveAttribute("required")
}

// Messages returns a copy of the validation messages.
func (b *Base) Messages() validator.Messages {
	return maps.Clone(b.messages)
}

func (b *Base) SetMessages(msgs validator.Messages) {
	b.messages = maps.Clone(msgs)
	if b.messages == nil {
		b.messages = validator.Messages{}
	}
}
