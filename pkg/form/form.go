package form

import (
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/inputfilter"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Form is the root container. It owns the input filter that validates the
// submitted data.
type Form struct {
	Fieldset

	factory      *Factory
	filter       *inputfilter.InputFilter
	useDefaults  bool
	baseFieldset Container
	logger       *slog.Logger

	data      map[string]any
	hasData   bool
	validated bool
	valid     bool
}

var (
	_ Container    = (*Form)(nil)
	_ PrepareAware = (*Form)(nil)
)

// inputBinder elements keep the input created for them by
// AttachInputFilterDefaults.
type inputBinder interface {
	bindInput(in *inputfilter.Input)
}

// Option configures a Form.
type Option func(*Form)

func WithFactory(factory *Factory) Option {
	return func(f *Form) {
		if factory != nil {
			f.factory = factory
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithInputFilter sets the input filter. Element defaults are still attached
// to it unless WithUseInputFilterDefaults(false) is given.
func WithInputFilter(filter *inputfilter.InputFilter) Option {
	return func(f *Form) {
		f.filter = filter
	}
}

func WithUseInputFilterDefaults(use bool) Option {
	return func(f *Form) {
		f.useDefaults = use
	}
}

func New(name string, opts ...Option) *Form {
	f := &Form{
		Fieldset:    Fieldset{Base: NewBase(name, "", WithAttribute("method", "POST"))},
		useDefaults: true,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.factory == nil {
		f.factory = NewFactory()
	}
	f.logger = f.logger.With(logger.Component("form"), logger.Form(name))
	return f
}

// Add attaches an element or fieldset. A fieldset flagged with
// SetUseAsBaseFieldset becomes the base fieldset of the form.
func (f *Form) Add(el Element, opts ...AddOption) error {
	if err := f.add(f, el, opts); err != nil {
		return err
	}
	if c, ok := el.(Container); ok && c.UseAsBaseFieldset() {
		f.baseFieldset = c
	}
	return nil
}

// BaseFieldset returns the fieldset bound by Bind, or nil.
func (f *Form) BaseFieldset() Container {
	return f.baseFieldset
}

func (f *Form) Factory() *Factory {
	return f.factory
}

func (f *Form) SetFactory(factory *Factory) {
	if factory != nil {
		f.factory = factory
	}
}

func (f *Form) SetUseInputFilterDefaults(use bool) {
	f.useDefaults = use
}

func (f *Form) UseInputFilterDefaults() bool {
	return f.useDefaults
}

func (f *Form) SetInputFilter(filter *inputfilter.InputFilter) {
	f.filter = filter
	f.validated = false
}

// InputFilter returns the input filter, creating an empty one when none is
// set. When defaults are enabled, element and fieldset specifications are
// attached first.
func (f *Form) InputFilter() (*inputfilter.InputFilter, error) {
	if f.filter == nil {
		f.filter = inputfilter.New()
	}
	if f.useDefaults {
		if err := f.AttachInputFilterDefaults(f.filter, f); err != nil {
			return nil, err
		}
	}
	return f.filter, nil
}

// AttachInputFilterDefaults adds inputs and nested input filters for the
// elements and fieldsets of c that filter does not have yet. Existing entries
// are never replaced.
func (f *Form) AttachInputFilterDefaults(filter *inputfilter.InputFilter, c Container) error {
	factory := f.factory.InputFilterFactory()

	for _, el := range c.Elements() {
		provider, ok := el.(InputProvider)
		if !ok {
			continue
		}
		name := el.Name()
		if filter.Has(name) {
			continue
		}

		in, err := factory.CreateInput(provider.InputSpecification())
		if err != nil {
			return err
		}
		if err := filter.Add(in, name); err != nil {
			return err
		}
		if b, ok := el.(inputBinder); ok {
			b.bindInput(in)
		}
	}

	for _, fs := range c.Fieldsets() {
		name := fs.Name()

		provider, ok := fs.(InputFilterProvider)
		if !ok {
			if !filter.Has(name) {
				if err := filter.Add(inputfilter.New(), name); err != nil {
					return err
				}
			}
			nested, ok := filter.Nested(name)
			if !ok {
				// a plain input stands for the whole fieldset
				continue
			}
			if err := f.AttachInputFilterDefaults(nested, fs); err != nil {
				return err
			}
			continue
		}

		if filter.Has(name) {
			continue
		}

		nested, err := factory.CreateInputFilter(provider.InputFilterSpecification())
		if err != nil {
			return err
		}
		if err := filter.Add(nested, name); err != nil {
			return err
		}
		if err := f.AttachInputFilterDefaults(nested, fs); err != nil {
			return err
		}
	}
	return nil
}

// Prepare builds the input filter and prepares the elements that need it.
func (f *Form) Prepare() error {
	if _, err := f.InputFilter(); err != nil {
		return err
	}
	f.Fieldset.PrepareElement(f)
	return nil
}
