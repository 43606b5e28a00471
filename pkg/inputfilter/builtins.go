package inputfilter

import (
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

var builtinValidators = map[string]ValidatorConstructor{
	"alnum": func(opts Options) (validator.Validator, error) {
		ws, err := opts.Bool("allow_white_space", false)
		if err != nil {
			return nil, err
		}
		return validator.NewAlnum(validator.WithAllowWhiteSpace(ws)), nil
	},
	"not_empty": func(Options) (validator.Validator, error) {
		return validator.NewNotEmpty(), nil
	},
	"string_length": func(opts Options) (validator.Validator, error) {
		minLen, err := opts.Int("min", 0)
		if err != nil {
			return nil, err
		}
		maxLen, err := opts.Int("max", 0)
		if err != nil {
			return nil, err
		}
		if maxLen > 0 && minLen > maxLen {
			return nil, fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidOption, minLen, maxLen)
		}
		return validator.NewStringLength(minLen, maxLen), nil
	},
	"regex": func(opts Options) (validator.Validator, error) {
		pattern, err := opts.String("pattern", "")
		if err != nil {
			return nil, err
		}
		if pattern == "" {
			return nil, fmt.Errorf("%w: pattern is required", ErrInvalidOption)
		}
		return validator.NewRegex(pattern)
	},
	"in_array": func(opts Options) (validator.Validator, error) {
		haystack, err := opts.Strings("haystack")
		if err != nil {
			return nil, err
		}
		return validator.NewInArray(haystack...), nil
	},
	"identical": func(opts Options) (validator.Validator, error) {
		token, err := opts.String("token", "")
		if err != nil {
			return nil, err
		}
		return validator.NewIdentical(token), nil
	},
	"between": func(opts Options) (validator.Validator, error) {
		minV, err := opts.Float("min", 0)
		if err != nil {
			return nil, err
		}
		maxV, err := opts.Float("max", 0)
		if err != nil {
			return nil, err
		}
		inclusive, err := opts.Bool("inclusive", true)
		if err != nil {
			return nil, err
		}
		return validator.NewBetween(minV, maxV, inclusive), nil
	},
	"required": ruleValidator(validator.Required),
	"min_len": func(opts Options) (validator.Validator, error) {
		n, err := opts.Int("min", 0)
		if err != nil {
			return nil, err
		}
		return validator.NewRuleValidator(func(field, value string) validator.Rule {
			return validator.MinLen(field, value, n)
		}), nil
	},
	"max_len": func(opts Options) (validator.Validator, error) {
		n, err := opts.Int("max", 0)
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, fmt.Errorf("%w: max_len requires a positive max", ErrInvalidOption)
		}
		return validator.NewRuleValidator(func(field, value string) validator.Rule {
			return validator.MaxLen(field, value, n)
		}), nil
	},
	"email":         ruleValidator(validator.ValidEmail),
	"url":           ruleValidator(validator.ValidURL),
	"uuid":          ruleValidator(validator.ValidUUID),
	"currency_code": ruleValidator(validator.ValidCurrencyCode),
}

func ruleValidator(fn validator.RuleFunc) ValidatorConstructor {
	return func(Options) (validator.Validator, error) {
		return validator.NewRuleValidator(fn), nil
	}
}

var builtinFilters = map[string]FilterConstructor{
	"trim": func(opts Options) (Filter, error) {
		cutset, err := opts.String("chars", "")
		if err != nil {
			return nil, err
		}
		return Trim(cutset), nil
	},
	"to_lower": simpleFilter(ToLower),
	"to_upper": simpleFilter(ToUpper),
	"strip_tags": func(opts Options) (Filter, error) {
		ugc, err := opts.Bool("allow_safe_markup", false)
		if err != nil {
			return nil, err
		}
		if ugc {
			return StripUnsafeTags(), nil
		}
		return StripTags(), nil
	},
	"strip_newlines": simpleFilter(StripNewlines),
	"alnum": func(opts Options) (Filter, error) {
		ws, err := opts.Bool("allow_white_space", false)
		if err != nil {
			return nil, err
		}
		return Alnum(ws), nil
	},
	"digits":  simpleFilter(Digits),
	"int":     simpleFilter(ToInt),
	"float":   simpleFilter(ToFloat),
	"boolean": simpleFilter(ToBool),
}

func simpleFilter(fn func() Filter) FilterConstructor {
	return func(Options) (Filter, error) {
		return fn(), nil
	}
}
