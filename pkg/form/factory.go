package form

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/inputfilter"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// ElementSpec declares an element or a fieldset.
type ElementSpec struct {
	Type       string            `yaml:"type"`
	Name       string            `yaml:"name"`
	Label      string            `yaml:"label,omitempty"`
	Value      any               `yaml:"value,omitempty"`
	Required   *bool             `yaml:"required,omitempty"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
	Priority   int               `yaml:"priority,omitempty"`

	// select
	ValueOptions []SelectOption `yaml:"value_options,omitempty"`

	// checkbox
	CheckedValue   string `yaml:"checked_value,omitempty"`
	UncheckedValue string `yaml:"unchecked_value,omitempty"`

	// fieldset
	Elements          []ElementSpec                `yaml:"elements,omitempty"`
	InputFilter       *inputfilter.InputFilterSpec `yaml:"input_filter,omitempty"`
	UseAsBaseFieldset bool                         `yaml:"use_as_base_fieldset,omitempty"`
}

// ElementOptions returns the common options described by s.
func (s ElementSpec) ElementOptions() []ElementOption {
	opts := []ElementOption{WithAttributes(s.Attributes)}
	if s.Label != "" {
		opts = append(opts, WithLabel(s.Label))
	}
	if s.Value != nil {
		opts = append(opts, WithValue(s.Value))
	}
	if s.Required != nil {
		opts = append(opts, WithRequired(*s.Required))
	}
	return opts
}

// FormSpec declares a form.
type FormSpec struct {
	Name                   string                       `yaml:"name"`
	Attributes             map[string]string            `yaml:"attributes,omitempty"`
	Elements               []ElementSpec                `yaml:"elements,omitempty"`
	InputFilter            *inputfilter.InputFilterSpec `yaml:"input_filter,omitempty"`
	UseInputFilterDefaults *bool                        `yaml:"use_input_filter_defaults,omitempty"`
}

// ElementConstructor builds an element of a registered type. Children listed
// in the ElementSpec are added by the factory when the result is a Container.
type ElementConstructor func(spec ElementSpec) (Element, error)

// Factory creates elements and forms from specifications and holds the input
// filter factory used for element defaults.
type Factory struct {
	mu                 sync.RWMutex
	types              map[string]ElementConstructor
	inputFilterFactory *inputfilter.Factory
	logger             *slog.Logger
}

type FactoryOption func(*Factory)

func WithInputFilterFactory(f *inputfilter.Factory) FactoryOption {
	return func(factory *Factory) {
		if f != nil {
			factory.inputFilterFactory = f
		}
	}
}

func WithFactoryLogger(l *slog.Logger) FactoryOption {
	return func(factory *Factory) {
		if l != nil {
			factory.logger = l
		}
	}
}

func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		types:  make(map[string]ElementConstructor, len(builtinTypes)),
		logger: logger.Discard(),
	}
	for name, ctor := range builtinTypes {
		f.types[name] = ctor
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.inputFilterFactory == nil {
		f.inputFilterFactory = inputfilter.NewFactory(inputfilter.WithLogger(f.logger))
	}
	f.logger = f.logger.With(logger.Component("form.factory"))
	return f
}

func (f *Factory) InputFilterFactory() *inputfilter.Factory {
	return f.inputFilterFactory
}

// RegisterType adds or replaces an element type.
func (f *Factory) RegisterType(name string, ctor ElementConstructor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.types[name] = ctor
}

func (f *Factory) HasType(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.types[name]
	return ok
}

// CreateElement builds an element and, for containers, its children.
func (f *Factory) CreateElement(spec ElementSpec) (Element, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("%w: element of type %q", ErrElementNameRequired, spec.Type)
	}
	typ := spec.Type
	if typ == "" {
		typ = "text"
		if len(spec.Elements) > 0 {
			typ = "fieldset"
		}
	}

	f.mu.RLock()
	ctor, ok := f.types[typ]
	f.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownElementType, typ)
	}

	el, err := ctor(spec)
	if err != nil {
		return nil, fmt.Errorf("element %q: %w", spec.Name, err)
	}

	if c, ok := el.(Container); ok {
		c.SetUseAsBaseFieldset(spec.UseAsBaseFieldset)
		if err := f.addChildren(c, spec.Elements); err != nil {
			return nil, fmt.Errorf("fieldset %q: %w", spec.Name, err)
		}
	} else if len(spec.Elements) > 0 {
		return nil, fmt.Errorf("%w: element %q of type %q cannot hold elements", ErrInvalidFormSpec, spec.Name, typ)
	}
	return el, nil
}

func (f *Factory) addChildren(c Container, specs []ElementSpec) error {
	for _, s := range specs {
		el, err := f.CreateElement(s)
		if err != nil {
			return err
		}
		if err := c.Add(el, WithPriority(s.Priority)); err != nil {
			return err
		}
	}
	return nil
}

// CreateForm builds a form from spec. The form uses this factory; opts are
// applied after that.
func (f *Factory) CreateForm(spec FormSpec, opts ...Option) (*Form, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("%w: form name is required", ErrInvalidFormSpec)
	}

	formOpts := []Option{WithFactory(f)}
	if spec.InputFilter != nil {
		filter, err := f.inputFilterFactory.CreateInputFilter(*spec.InputFilter)
		if err != nil {
			return nil, fmt.Errorf("form %q: %w", spec.Name, err)
		}
		formOpts = append(formOpts, WithInputFilter(filter))
	}
	if spec.UseInputFilterDefaults != nil {
		formOpts = append(formOpts, WithUseInputFilterDefaults(*spec.UseInputFilterDefaults))
	}

	form := New(spec.Name, append(formOpts, opts...)...)
	for k, v := range spec.Attributes {
		form.SetAttribute(k, v)
	}
	if err := f.addChildren(form, spec.Elements); err != nil {
		return nil, fmt.Errorf("form %q: %w", spec.Name, err)
	}

	f.logger.Debug("form created", logger.Form(spec.Name), slog.Int("elements", form.Count()))
	return form, nil
}

// CreateFromYAML builds a form from a YAML encoded FormSpec.
func (f *Factory) CreateFromYAML(data []byte, opts ...Option) (*Form, error) {
	var spec FormSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return f.CreateForm(spec, opts...)
}

// specFieldset is a fieldset declared with its own input filter specification.
type specFieldset struct {
	Fieldset
	spec inputfilter.InputFilterSpec
}

var _ InputFilterProvider = (*specFieldset)(nil)

func (s *specFieldset) Add(el Element, opts ...AddOption) error {
	return s.add(s, el, opts)
}

func (s *specFieldset) InputFilterSpecification() inputfilter.InputFilterSpec {
	return s.spec
}

var builtinTypes = map[string]ElementConstructor{
	"text": func(s ElementSpec) (Element, error) {
		return NewText(s.Name, s.ElementOptions()...), nil
	},
	"textarea": func(s ElementSpec) (Element, error) {
		return NewTextarea(s.Name, s.ElementOptions()...), nil
	},
	"hidden": func(s ElementSpec) (Element, error) {
		return NewHidden(s.Name, s.ElementOptions()...), nil
	},
	"password": func(s ElementSpec) (Element, error) {
		return NewPassword(s.Name, s.ElementOptions()...), nil
	},
	"email": func(s ElementSpec) (Element, error) {
		return NewEmail(s.Name, s.ElementOptions()...), nil
	},
	"number": func(s ElementSpec) (Element, error) {
		return NewNumber(s.Name, s.ElementOptions()...), nil
	},
	"select": func(s ElementSpec) (Element, error) {
		if len(s.ValueOptions) == 0 {
			return nil, fmt.Errorf("%w: select needs value_options", ErrInvalidFormSpec)
		}
		return NewSelect(s.Name, s.ValueOptions, s.ElementOptions()...), nil
	},
	"checkbox": func(s ElementSpec) (Element, error) {
		cb := NewCheckbox(s.Name, s.ElementOptions()...)
		checked, unchecked := s.CheckedValue, s.UncheckedValue
		if checked == "" {
			checked = DefaultCheckedValue
		}
		if unchecked == "" {
			unchecked = DefaultUncheckedValue
		}
		cb.SetCheckedValues(checked, unchecked)
		return cb, nil
	},
	"csrf": func(s ElementSpec) (Element, error) {
		return NewCsrf(s.Name, s.ElementOptions()...), nil
	},
	"fieldset": func(s ElementSpec) (Element, error) {
		fs := NewFieldset(s.Name, s.ElementOptions()...)
		if s.InputFilter == nil {
			return fs, nil
		}
		return &specFieldset{Fieldset: *fs, spec: *s.InputFilter}, nil
	},
}
