package form

import (
	"cmp"
	"fmt"
	"log/slog"
	"maps"
	"mime"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// DefaultMaxMemory is the multipart memory limit used by SetRequest.
const DefaultMaxMemory = 32 << 20

// SetData sets the data to validate. Fieldset data is a nested map[string]any.
func (f *Form) SetData(data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	f.data = maps.Clone(data)
	f.hasData = true
	f.validated = false
	f.valid = false
}

// SetValues sets the data from submitted values. Keys in bracket notation
// such as "address[city]" become nested maps and "tags[]" becomes a list.
func (f *Form) SetValues(values url.Values) {
	f.SetData(ParseValues(values))
}

// SetRequest reads the data from r: the query string for GET and HEAD, the
// parsed body otherwise.
func (f *Form) SetRequest(r *http.Request) error {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		f.SetValues(r.URL.Query())
		return nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
	} else if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
	}

	f.SetValues(r.PostForm)
	return nil
}

// HasData reports whether data has been set.
func (f *Form) HasData() bool {
	return f.hasData
}

// SetValidationGroup limits validation to the named top-level entries.
// Without names everything is validated.
func (f *Form) SetValidationGroup(names ...string) error {
	filter, err := f.InputFilter()
	if err != nil {
		return err
	}
	f.validated = false
	return filter.SetValidationGroup(names...)
}

// IsValid prepares the form, validates the data with the input filter, and
// copies values and messages back to the elements.
func (f *Form) IsValid() (bool, error) {
	if !f.hasData {
		return false, ErrNoData
	}
	start := time.Now()

	if err := f.Prepare(); err != nil {
		return false, err
	}

	f.filter.SetData(f.data)
	valid, err := f.filter.IsValid()
	if err != nil {
		return false, err
	}

	f.SetValue(f.data)
	pushMessages(f, f.filter.Messages())

	f.validated = true
	f.valid = valid

	f.logger.Debug("form validated",
		slog.Bool("valid", valid),
		slog.Any("invalid", f.filter.InvalidInputs()),
		logger.Duration(time.Since(start)),
	)
	return valid, nil
}

// Data returns the filtered values of the last successful validation.
func (f *Form) Data() (map[string]any, error) {
	if !f.validated || !f.valid {
		return nil, ErrNotValidated
	}
	return f.filter.Values(), nil
}

// FormMessages returns the validation messages of the whole tree keyed by
// element name; fieldsets map to nested maps. Messages, inherited from
// Fieldset, holds the messages set on the form element itself.
func (f *Form) FormMessages() map[string]any {
	if f.filter == nil {
		return map[string]any{}
	}
	return f.filter.Messages()
}

// Err returns the failures of the last validation as
// validator.ValidationErrors, or nil.
func (f *Form) Err() error {
	if f.filter == nil || !f.validated {
		return nil
	}
	return f.filter.Err()
}

func pushMessages(c Container, msgs map[string]any) {
	for _, el := range c.Elements() {
		m, _ := msgs[el.Name()].(validator.Messages)
		el.SetMessages(m)
	}
	for _, fs := range c.Fieldsets() {
		switch m := msgs[fs.Name()].(type) {
		case validator.Messages:
			fs.SetMessages(m)
			pushMessages(fs, nil)
		case map[string]any:
			fs.SetMessages(nil)
			pushMessages(fs, m)
		default:
			fs.SetMessages(nil)
			pushMessages(fs, nil)
		}
	}
}

// ParseValues converts submitted values into nested data. Single values
// become strings and repeated values or "[]" keys become []string. When a
// key is both a value and a parent ("a" and "a[b]"), the nested path wins.
func ParseValues(values url.Values) map[string]any {
	type entry struct {
		key  string
		path []string
		list bool
	}
	entries := make([]entry, 0, len(values))
	for key := range values {
		path, list := splitKey(key)
		if len(path) == 0 {
			continue
		}
		entries = append(entries, entry{key: key, path: path, list: list})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(len(a.path), len(b.path)); c != 0 {
			return c
		}
		return strings.Compare(a.key, b.key)
	})

	out := map[string]any{}
	for _, e := range entries {
		vals, path, list := values[e.key], e.path, e.list

		var value any
		switch {
		case list || len(vals) > 1:
			value = append([]string(nil), vals...)
		case len(vals) == 1:
			value = vals[0]
		default:
			value = ""
		}
		setPath(out, path, value)
	}
	return out
}

// splitKey turns "a[b][c][]" into ["a", "b", "c"] and reports the trailing "[]".
func splitKey(key string) ([]string, bool) {
	head, rest, found := strings.Cut(key, "[")
	if !found {
		return []string{key}, false
	}
	if head == "" {
		return nil, false
	}

	path := []string{head}
	list := false
	rest = "[" + rest
	for rest != "" {
		if !strings.HasPrefix(rest, "[") {
			return []string{key}, false
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return []string{key}, false
		}
		part := rest[1:end]
		rest = rest[end+1:]
		if part == "" {
			if rest != "" {
				return []string{key}, false
			}
			list = true
			break
		}
		path = append(path, part)
	}
	return path, list
}

func setPath(data map[string]any, path []string, value any) {
	for _, part := range path[:len(path)-1] {
		next, ok := data[part].(map[string]any)
		if !ok {
			next = map[string]any{}
			data[part] = next
		}
		data = next
	}
	data[path[len(path)-1]] = value
}
