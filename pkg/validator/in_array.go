package validator

import "slices"

// NotInArray is the message key reported by InArray.
const NotInArray = "notInArray"

var inArrayTemplates = map[string]string{
	NotInArray: "The input was not found in the haystack",
}

// InArray accepts values whose string form is one of the haystack entries.
type InArray struct {
	Base
	haystack []string
}

func NewInArray(haystack ...string) *InArray {
	return &InArray{
		Base:     newBase(inArrayTemplates),
		haystack: slices.Clone(haystack),
	}
}

func (v *InArray) Haystack() []string {
	return slices.Clone(v.haystack)
}

func (v *InArray) IsValid(value any) bool {
	v.reset()

	if values, ok := value.([]string); ok {
		for _, item := range values {
			if !slices.Contains(v.haystack, item) {
				v.fail(NotInArray, item)
				return false
			}
		}
		return true
	}

	s, ok := scalarString(value)
	if !ok || !slices.Contains(v.haystack, s) {
		v.fail(NotInArray, value)
		return false
	}
	return true
}
