package inputfilter

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Entry is a member of an InputFilter: either an *Input or a nested *InputFilter.
type Entry interface {
	assign(value any, present bool)
	validate() bool
	value() (any, bool)
	rawValue() (any, bool)
	messageTree() (any, bool)
	collectErrors(path string, out *validator.ValidationErrors)
	stopsChain() bool
}

var (
	_ Entry = (*Input)(nil)
	_ Entry = (*InputFilter)(nil)
)

type namedEntry struct {
	name  string
	entry Entry
}

// InputFilter is an ordered collection of named inputs and nested input filters.
// It is not safe for concurrent use.
type InputFilter struct {
	entries []namedEntry

	data    map[string]any
	hasData bool

	group   []string
	valid   []string
	invalid []string
}

func New() *InputFilter {
	return &InputFilter{}
}

// Add stores entry under name. An empty name falls back to the input's own name.
// Adding under an existing name replaces the entry in place.
func (f *InputFilter) Add(entry Entry, name string) error {
	if entry == nil {
		return ErrNilEntry
	}
	if in, ok := entry.(*Input); ok && name == "" {
		name = in.Name()
	}
	if name == "" {
		return ErrEmptyName
	}

	if idx := f.indexOf(name); idx >= 0 {
		f.entries[idx].entry = entry
		return nil
	}
	f.entries = append(f.entries, namedEntry{name: name, entry: entry})
	return nil
}

func (f *InputFilter) Has(name string) bool {
	return f.indexOf(name) >= 0
}

func (f *InputFilter) Get(name string) (Entry, bool) {
	idx := f.indexOf(name)
	if idx < 0 {
		return nil, false
	}
	return f.entries[idx].entry, true
}

// Input returns the entry under name when it is an *Input.
func (f *InputFilter) Input(name string) (*Input, bool) {
	e, ok := f.Get(name)
	if !ok {
		return nil, false
	}
	in, ok := e.(*Input)
	return in, ok
}

// Nested returns the entry under name when it is an *InputFilter.
func (f *InputFilter) Nested(name string) (*InputFilter, bool) {
	e, ok := f.Get(name)
	if !ok {
		return nil, false
	}
	nested, ok := e.(*InputFilter)
	return nested, ok
}

func (f *InputFilter) Remove(name string) {
	if idx := f.indexOf(name); idx >= 0 {
		f.entries = slices.Delete(f.entries, idx, idx+1)
	}
	f.group = slices.DeleteFunc(f.group, func(n string) bool { return n == name })
}

// Names returns entry names in insertion order.
func (f *InputFilter) Names() []string {
	names := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		names = append(names, e.name)
	}
	return names
}

func (f *InputFilter) Count() int {
	return len(f.entries)
}

// SetData replaces the data to validate. Values for nested input filters are
// expected as map[string]any.
func (f *InputFilter) SetData(data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	f.data = data
	f.hasData = true
	f.valid = nil
	f.invalid = nil
}

// HasData reports whether SetData has been called.
func (f *InputFilter) HasData() bool {
	return f.hasData
}

// SetValidationGroup limits IsValid, Values and RawValues to the named entries.
// Calling it without names validates everything again.
func (f *InputFilter) SetValidationGroup(names ...string) error {
	for _, name := range names {
		if !f.Has(name) {
			return fmt.Errorf("%w: %q", ErrUnknownEntry, name)
		}
	}
	f.group = slices.Clone(names)
	return nil
}

func (f *InputFilter) ValidationGroup() []string {
	return slices.Clone(f.group)
}

// IsValid distributes the data to every entry and validates them in order.
// It stops early after a failing input flagged with break-on-failure.
func (f *InputFilter) IsValid() (bool, error) {
	if !f.hasData {
		return false, ErrNoData
	}
	return f.validate(), nil
}

// ValidInputs returns the names that passed the last IsValid call.
func (f *InputFilter) ValidInputs() []string {
	return slices.Clone(f.valid)
}

// InvalidInputs returns the names that failed the last IsValid call.
func (f *InputFilter) InvalidInputs() []string {
	return slices.Clone(f.invalid)
}

// Values returns the filtered values. Inputs without a value are omitted;
// nested input filters are represented as map[string]any.
func (f *InputFilter) Values() map[string]any {
	out := make(map[string]any, len(f.entries))
	for _, e := range f.active() {
		if v, ok := e.entry.value(); ok {
			out[e.name] = v
		}
	}
	return out
}

// RawValues returns the unfiltered values in the same shape as Values.
func (f *InputFilter) RawValues() map[string]any {
	out := make(map[string]any, len(f.entries))
	for _, e := range f.active() {
		if v, ok := e.entry.rawValue(); ok {
			out[e.name] = v
		}
	}
	return out
}

// Messages returns the failure messages of the last IsValid call keyed by
// entry name. Inputs map to validator.Messages and nested input filters to
// map[string]any. Entries not checked by that call report nothing.
func (f *InputFilter) Messages() map[string]any {
	out := make(map[string]any)
	for _, e := range f.failed() {
		if m, ok := e.entry.messageTree(); ok {
			out[e.name] = m
		}
	}
	return out
}

// Err returns the failures of the last IsValid call as validator.ValidationErrors
// with dotted field paths, or nil when there are none.
func (f *InputFilter) Err() error {
	var errs validator.ValidationErrors
	f.collectErrors("", &errs)
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func (f *InputFilter) indexOf(name string) int {
	return slices.IndexFunc(f.entries, func(e namedEntry) bool { return e.name == name })
}

func (f *InputFilter) active() []namedEntry {
	if len(f.group) == 0 {
		return f.entries
	}
	out := make([]namedEntry, 0, len(f.group))
	for _, e := range f.entries {
		if slices.Contains(f.group, e.name) {
			out = append(out, e)
		}
	}
	return out
}

// failed returns the entries that failed the last IsValid call.
func (f *InputFilter) failed() []namedEntry {
	out := make([]namedEntry, 0, len(f.invalid))
	for _, e := range f.entries {
		if slices.Contains(f.invalid, e.name) {
			out = append(out, e)
		}
	}
	return out
}

func (f *InputFilter) populate() {
	for _, e := range f.entries {
		v, ok := f.data[e.name]
		e.entry.assign(v, ok)
	}
}

func (f *InputFilter) validate() bool {
	f.populate()
	f.valid = f.valid[:0]
	f.invalid = f.invalid[:0]

	for _, e := range f.active() {
		if e.entry.validate() {
			f.valid = append(f.valid, e.name)
			continue
		}
		f.invalid = append(f.invalid, e.name)
		if e.entry.stopsChain() {
			break
		}
	}
	return len(f.invalid) == 0
}

func (f *InputFilter) assign(value any, present bool) {
	data, _ := value.(map[string]any)
	if !present || data == nil {
		data = map[string]any{}
	}
	f.SetData(data)
}

func (f *InputFilter) value() (any, bool) {
	return f.Values(), true
}

func (f *InputFilter) rawValue() (any, bool) {
	return f.RawValues(), true
}

func (f *InputFilter) messageTree() (any, bool) {
	m := f.Messages()
	return m, len(m) > 0
}

func (f *InputFilter) collectErrors(path string, out *validator.ValidationErrors) {
	for _, e := range f.failed() {
		child := e.name
		if path != "" {
			child = path + "." + e.name
		}
		e.entry.collectErrors(child, out)
	}
}

func (f *InputFilter) stopsChain() bool { return false }
