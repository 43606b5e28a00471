package validator

import "strconv"

// Message keys reported by Between.
const (
	ValueNotNumeric  = "valueNotNumeric"
	NotBetween       = "notBetween"
	NotBetweenStrict = "notBetweenStrict"
)

var betweenTemplates = map[string]string{
	ValueNotNumeric:  "The min ('%min%') and max ('%max%') values are numeric, but the input is not",
	NotBetween:       "The input is not between '%min%' and '%max%', inclusively",
	NotBetweenStrict: "The input is not strictly between '%min%' and '%max%'",
}

// Between accepts numbers (or numeric strings) inside [min, max].
// With inclusive set to false the bounds themselves are rejected.
type Between struct {
	Base
	min       float64
	max       float64
	inclusive bool
}

func NewBetween(min, max float64, inclusive bool) *Between {
	return &Between{
		Base:      newBase(betweenTemplates),
		min:       min,
		max:       max,
		inclusive: inclusive,
	}
}

func (v *Between) IsValid(value any) bool {
	v.reset()

	minS := strconv.FormatFloat(v.min, 'f', -1, 64)
	maxS := strconv.FormatFloat(v.max, 'f', -1, 64)

	n, ok := numericValue(value)
	if !ok {
		v.fail(ValueNotNumeric, value, "min", minS, "max", maxS)
		return false
	}

	if v.inclusive {
		if n < v.min || n > v.max {
			v.fail(NotBetween, value, "min", minS, "max", maxS)
			return false
		}
		return true
	}

	if n <= v.min || n >= v.max {
		v.fail(NotBetweenStrict, value, "min", minS, "max", maxS)
		return false
	}
	return true
}
