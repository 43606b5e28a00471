package inputfilter

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// ValidatorConstructor builds a validator from spec options.
type ValidatorConstructor func(opts Options) (validator.Validator, error)

// FilterConstructor builds a filter from spec options.
type FilterConstructor func(opts Options) (Filter, error)

type translatable interface {
	SetTranslator(tr validator.Translator, lang string)
}

type messageOverridable interface {
	SetMessages(templates map[string]string) error
}

// Factory creates inputs and input filters from specs using registries of
// named validator and filter constructors. It is safe for concurrent use.
type Factory struct {
	mu         sync.RWMutex
	validators map[string]ValidatorConstructor
	filters    map[string]FilterConstructor

	translator validator.Translator
	lang       string
	logger     *slog.Logger
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithTranslator attaches tr to every created validator that supports translation.
func WithTranslator(tr validator.Translator, lang string) FactoryOption {
	return func(f *Factory) {
		f.translator = tr
		f.lang = lang
	}
}

func WithLogger(l *slog.Logger) FactoryOption {
	return func(f *Factory) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewFactory returns a factory with the built-in validators and filters registered.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		validators: maps.Clone(builtinValidators),
		filters:    maps.Clone(builtinFilters),
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With(logger.Component("inputfilter"))
	return f
}

// RegisterValidator adds or replaces a validator constructor.
func (f *Factory) RegisterValidator(name string, ctor ValidatorConstructor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.validators[name] = ctor
}

// RegisterFilter adds or replaces a filter constructor.
func (f *Factory) RegisterFilter(name string, ctor FilterConstructor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters[name] = ctor
}

func (f *Factory) HasValidator(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.validators[name]
	return ok
}

func (f *Factory) HasFilter(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.filters[name]
	return ok
}

func (f *Factory) CreateValidator(spec ValidatorSpec) (validator.Validator, error) {
	f.mu.RLock()
	ctor, ok := f.validators[spec.Name]
	f.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownValidator, spec.Name)
	}

	v, err := ctor(spec.Options)
	if err != nil {
		return nil, fmt.Errorf("validator %q: %w", spec.Name, err)
	}

	if len(spec.Messages) > 0 {
		mo, ok := v.(messageOverridable)
		if !ok {
			return nil, fmt.Errorf("%w: validator %q does not support message overrides", ErrInvalidOption, spec.Name)
		}
		if err := mo.SetMessages(spec.Messages); err != nil {
			return nil, fmt.Errorf("validator %q: %w", spec.Name, err)
		}
	}

	if f.translator != nil {
		if tv, ok := v.(translatable); ok {
			tv.SetTranslator(f.translator, f.lang)
		}
	}
	return v, nil
}

func (f *Factory) CreateFilter(spec FilterSpec) (Filter, error) {
	f.mu.RLock()
	ctor, ok := f.filters[spec.Name]
	f.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, spec.Name)
	}

	flt, err := ctor(spec.Options)
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", spec.Name, err)
	}
	return flt, nil
}

// CreateInput builds an Input from spec.
func (f *Factory) CreateInput(spec InputSpec) (*Input, error) {
	if spec.Name == "" {
		return nil, ErrEmptyName
	}

	in := NewInput(spec.Name).
		SetRequired(spec.Required).
		SetAllowEmpty(spec.AllowEmpty).
		SetBreakOnFailure(spec.BreakOnFailure).
		SetErrorMessage(spec.ErrorMessage)
	if f.translator != nil {
		in.SetTranslator(f.translator, f.lang)
	}

	for _, fs := range spec.Filters {
		flt, err := f.CreateFilter(fs)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", spec.Name, err)
		}
		in.AddFilter(flt)
	}
	for _, vs := range spec.Validators {
		v, err := f.CreateValidator(vs)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", spec.Name, err)
		}
		in.AddValidator(v, vs.BreakChainOnFailure)
	}

	f.logger.Debug("input created",
		logger.Field(spec.Name),
		slog.Int("filters", len(spec.Filters)),
		slog.Int("validators", len(spec.Validators)),
	)
	return in, nil
}

// CreateInputFilter builds an InputFilter from spec. Inputs are added before
// nested input filters, each group in sorted name order. An input spec without
// a name takes its map key.
func (f *Factory) CreateInputFilter(spec InputFilterSpec) (*InputFilter, error) {
	filter := New()

	for _, name := range slices.Sorted(maps.Keys(spec.Inputs)) {
		is := spec.Inputs[name]
		if is.Name == "" {
			is.Name = name
		}
		in, err := f.CreateInput(is)
		if err != nil {
			return nil, err
		}
		if err := filter.Add(in, name); err != nil {
			return nil, err
		}
	}

	for _, name := range slices.Sorted(maps.Keys(spec.Nested)) {
		nested, err := f.CreateInputFilter(spec.Nested[name])
		if err != nil {
			return nil, fmt.Errorf("nested %q: %w", name, err)
		}
		if err := filter.Add(nested, name); err != nil {
			return nil, err
		}
	}
	return filter, nil
}
