package inputfilter

import (
	"fmt"
	"strconv"
)

// Options carries constructor options for filters and validators. Values
// usually come from YAML, so numbers may arrive as int or float64 and lists as []any.
type Options map[string]any

func (o Options) String(key, def string) (string, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return def, nil
	}
	switch val := v.(type) {
	case string:
		return val, nil
	case fmt.Stringer:
		return val.String(), nil
	}
	return "", fmt.Errorf("%w: %q must be a string, got %T", ErrInvalidOption, key, v)
}

func (o Options) Int(key string, def int) (int, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return def, nil
	}
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		if val == float64(int(val)) {
			return int(val), nil
		}
	case string:
		if n, err := strconv.Atoi(val); err == nil {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %q must be an integer, got %v", ErrInvalidOption, key, v)
}

func (o Options) Float(key string, def float64) (float64, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return def, nil
	}
	switch val := v.(type) {
	case float64:
		return val, nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case string:
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q must be a number, got %v", ErrInvalidOption, key, v)
}

func (o Options) Bool(key string, def bool) (bool, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return def, nil
	}
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		if b, err := strconv.ParseBool(val); err == nil {
			return b, nil
		}
	}
	return false, fmt.Errorf("%w: %q must be a boolean, got %v", ErrInvalidOption, key, v)
}

func (o Options) Strings(key string) ([]string, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch val := v.(type) {
	case []string:
		return val, nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, fmt.Sprint(item))
		}
		return out, nil
	case string:
		return []string{val}, nil
	}
	return nil, fmt.Errorf("%w: %q must be a list, got %T", ErrInvalidOption, key, v)
}
