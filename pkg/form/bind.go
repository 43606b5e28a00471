package form

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Bind hydrates target, a pointer to struct, from the filtered data of the
// last successful validation and then checks its `validate` tags. With a base
// fieldset only that fieldset's data is bound. Fields are matched by their
// `form` tag, or the lower-cased field name; nested structs take fieldset data.
func (f *Form) Bind(target any) error {
	data, err := f.Data()
	if err != nil {
		return err
	}
	if f.baseFieldset != nil {
		data, _ = data[f.baseFieldset.Name()].(map[string]any)
	}

	if err := bindToStruct(target, data); err != nil {
		return err
	}
	return validator.Struct(target)
}

func bindToStruct(v any, data map[string]any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrInvalidBindTarget
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return ErrInvalidBindTarget
	}
	return bindStruct(rv, data, "")
}

func bindStruct(rv reflect.Value, data map[string]any, prefix string) error {
	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		fieldType := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		name, skip := parseFieldTag(fieldType)
		if skip {
			continue
		}
		value, ok := data[name]
		if !ok || value == nil {
			continue
		}

		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		if err := setFieldValue(field, value, path); err != nil {
			return err
		}
	}
	return nil
}

func parseFieldTag(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("form")
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	return name, false
}

func setFieldValue(field reflect.Value, value any, path string) error {
	if value == nil {
		return nil
	}
	if field.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return setFieldValue(field.Elem(), value, path)
	}

	switch field.Kind() {
	case reflect.Struct:
		nested, ok := value.(map[string]any)
		if !ok {
			return bindError(path, "expected fieldset data, got %T", value)
		}
		return bindStruct(field, nested, path)

	case reflect.Slice:
		return setSliceValue(field, value, path)
	}

	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(field.Type()) {
		field.Set(rv)
		return nil
	}
	if isNumber(rv.Kind()) && isNumber(field.Kind()) {
		return setNumber(field, rv, path)
	}

	s, ok := value.(string)
	if !ok {
		s = fmt.Sprint(value)
	}
	return setFromString(field, s, path)
}

func setSliceValue(field reflect.Value, value any, path string) error {
	var items []any
	switch v := value.(type) {
	case []string:
		for _, s := range v {
			items = append(items, s)
		}
	case []any:
		items = v
	case string:
		for _, s := range strings.Split(v, ",") {
			items = append(items, strings.TrimSpace(s))
		}
	default:
		items = []any{v}
	}

	slice := reflect.MakeSlice(field.Type(), len(items), len(items))
	for i, item := range items {
		if err := setFieldValue(slice.Index(i), item, fmt.Sprintf("%s.%d", path, i)); err != nil {
			return err
		}
	}
	field.Set(slice)
	return nil
}

func setNumber(field, rv reflect.Value, path string) error {
	var f float64
	switch {
	case rv.CanInt():
		f = float64(rv.Int())
	case rv.CanUint():
		f = float64(rv.Uint())
	default:
		f = rv.Float()
	}

	switch {
	case field.CanInt():
		if f != float64(int64(f)) || field.OverflowInt(int64(f)) {
			return bindError(path, "value %v does not fit %s", f, field.Type())
		}
		field.SetInt(int64(f))
	case field.CanUint():
		if f < 0 || f != float64(uint64(f)) || field.OverflowUint(uint64(f)) {
			return bindError(path, "value %v does not fit %s", f, field.Type())
		}
		field.SetUint(uint64(f))
	default:
		field.SetFloat(f)
	}
	return nil
}

func setFromString(field reflect.Value, value, path string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, field.Type().Bits())
		if err != nil {
			return bindError(path, "invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(value), 10, field.Type().Bits())
		if err != nil {
			return bindError(path, "invalid uint value %q", value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(strings.TrimSpace(value), field.Type().Bits())
		if err != nil {
			return bindError(path, "invalid float value %q", value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			switch strings.ToLower(value) {
			case "on", "yes":
				b = true
			case "off", "no", "":
				b = false
			default:
				return bindError(path, "invalid bool value %q", value)
			}
		}
		field.SetBool(b)

	default:
		return bindError(path, "unsupported type %s", field.Type())
	}
	return nil
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func bindError(path, format string, args ...any) error {
	return fmt.Errorf("%w: field %s: %s", ErrBindFailed, path, fmt.Sprintf(format, args...))
}
