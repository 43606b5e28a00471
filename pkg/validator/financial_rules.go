package validator

import (
	"regexp"

	"golang.org/x/text/currency"
)

var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidCurrencyCode validates an upper-case ISO 4217 code known to CLDR.
func ValidCurrencyCode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if !currencyCodeRegex.MatchString(value) {
				return false
			}
			_, err := currency.ParseISO(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid ISO 4217 currency code",
			TranslationKey: "validation.currency_code",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
