package form

import (
	"slices"
	"strings"
)

// Container is an element holding other elements.
type Container interface {
	Element
	Add(el Element, opts ...AddOption) error
	Get(name string) (Element, bool)
	Has(name string) bool
	Remove(name string)
	Count() int
	// Elements returns the non-container children in priority order.
	Elements() []Element
	// Fieldsets returns the container children in priority order.
	Fieldsets() []Container
	UseAsBaseFieldset() bool
	SetUseAsBaseFieldset(use bool)
}

// AddOption adjusts how an element is attached to a container.
type AddOption func(*addConfig)

type addConfig struct {
	name        string
	priority    int
	hasPriority bool
}

// WithName renames the element before it is attached.
func WithName(name string) AddOption {
	return func(c *addConfig) {
		c.name = name
	}
}

// WithPriority orders children; higher priorities come first and equal
// priorities keep insertion order.
func WithPriority(priority int) AddOption {
	return func(c *addConfig) {
		c.priority = priority
		c.hasPriority = true
	}
}

type child struct {
	el       Element
	priority int
	seq      int
}

// Fieldset groups elements and other fieldsets.
type Fieldset struct {
	Base
	children     []child
	seq          int
	baseFieldset bool
}

var (
	_ Container    = (*Fieldset)(nil)
	_ PrepareAware = (*Fieldset)(nil)
)

func NewFieldset(name string, opts ...ElementOption) *Fieldset {
	return &Fieldset{Base: NewBase(name, "", opts...)}
}

// Add attaches el. Adding under an existing name replaces that element in
// place. Containers cannot be added to themselves or their descendants.
func (f *Fieldset) Add(el Element, opts ...AddOption) error {
	return f.add(f, el, opts)
}

// add attaches el to f. self is the container the caller sees, which differs
// from f when the fieldset is embedded.
func (f *Fieldset) add(self Container, el Element, opts []AddOption) error {
	if el == nil {
		return ErrNilElement
	}

	var cfg addConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.name != "" {
		el.SetName(cfg.name)
	}
	name := el.Name()
	if strings.TrimSpace(name) == "" {
		return ErrElementNameRequired
	}

	if c, ok := el.(Container); ok {
		if c == self || contains(c, self) {
			return ErrCyclicNesting
		}
	}

	if idx := f.indexOf(name); idx >= 0 {
		f.children[idx].el = el
		if cfg.hasPriority {
			f.children[idx].priority = cfg.priority
		}
		return nil
	}

	f.seq++
	f.children = append(f.children, child{el: el, priority: cfg.priority, seq: f.seq})
	return nil
}

func contains(c Container, target Container) bool {
	for _, fs := range c.Fieldsets() {
		if fs == target || contains(fs, target) {
			return true
		}
	}
	return false
}

func (f *Fieldset) Get(name string) (Element, bool) {
	idx := f.indexOf(name)
	if idx < 0 {
		return nil, false
	}
	return f.children[idx].el, true
}

func (f *Fieldset) Has(name string) bool {
	return f.indexOf(name) >= 0
}

func (f *Fieldset) Remove(name string) {
	if idx := f.indexOf(name); idx >= 0 {
		f.children = slices.Delete(f.children, idx, idx+1)
	}
}

func (f *Fieldset) Count() int {
	return len(f.children)
}

// All returns every child in priority order.
func (f *Fieldset) All() []Element {
	sorted := slices.Clone(f.children)
	slices.SortStableFunc(sorted, func(a, b child) int {
		if a.priority != b.priority {
			return b.priority - a.priority
		}
		return a.seq - b.seq
	})
	out := make([]Element, 0, len(sorted))
	for _, c := range sorted {
		out = append(out, c.el)
	}
	return out
}

func (f *Fieldset) Elements() []Element {
	var out []Element
	for _, el := range f.All() {
		if _, ok := el.(Container); !ok {
			out = append(out, el)
		}
	}
	return out
}

func (f *Fieldset) Fieldsets() []Container {
	var out []Container
	for _, el := range f.All() {
		if c, ok := el.(Container); ok {
			out = append(out, c)
		}
	}
	return out
}

func (f *Fieldset) UseAsBaseFieldset() bool { return f.baseFieldset }

func (f *Fieldset) SetUseAsBaseFieldset(use bool) { f.baseFieldset = use }

// PrepareElement prepares the children that need it.
func (f *Fieldset) PrepareElement(form *Form) {
	for _, el := range f.All() {
		if p, ok := el.(PrepareAware); ok {
			p.PrepareElement(form)
		}
	}
}

// Value returns the children values keyed by name.
func (f *Fieldset) Value() any {
	out := make(map[string]any, len(f.children))
	for _, c := range f.children {
		out[c.el.Name()] = c.el.Value()
	}
	return out
}

// SetValue distributes a map[string]any to the children by name.
func (f *Fieldset) SetValue(value any) {
	data, _ := value.(map[string]any)
	for _, c := range f.children {
		v, ok := data[c.el.Name()]
		if !ok {
			continue
		}
		c.el.SetValue(v)
	}
}

func (f *Fieldset) indexOf(name string) int {
	return slices.IndexFunc(f.children, func(c child) bool { return c.el.Name() == name })
}
