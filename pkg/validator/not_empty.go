package validator

import (
	"reflect"
	"strings"
)

// Message keys reported by NotEmpty.
const (
	NotEmptyInvalid = "notEmptyInvalid"
	IsEmpty         = "isEmpty"
)

var notEmptyTemplates = map[string]string{
	NotEmptyInvalid: "Invalid type given. String, integer, float, boolean or array expected",
	IsEmpty:         "Value is required and can't be empty",
}

// NotEmpty rejects nil, blank strings and empty slices or maps.
type NotEmpty struct {
	Base
}

func NewNotEmpty() *NotEmpty {
	return &NotEmpty{Base: newBase(notEmptyTemplates)}
}

func (v *NotEmpty) IsValid(value any) bool {
	v.reset()

	if value == nil {
		v.fail(IsEmpty, value)
		return false
	}

	switch val := value.(type) {
	case string:
		if strings.TrimSpace(val) == "" {
			v.fail(IsEmpty, val)
			return false
		}
		return true
	case bool:
		return true
	}

	if _, ok := scalarString(value); ok {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		if rv.Len() == 0 {
			v.fail(IsEmpty, value)
			return false
		}
		return true
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			v.fail(IsEmpty, value)
			return false
		}
		return true
	}

	v.fail(NotEmptyInvalid, value)
	return false
}

// IsEmptyValue reports whether value would fail NotEmpty with the IsEmpty key.
func IsEmptyValue(value any) bool {
	v := NewNotEmpty()
	if v.IsValid(value) {
		return false
	}
	_, empty := v.messages[IsEmpty]
	return empty
}
