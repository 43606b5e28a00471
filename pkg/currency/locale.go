package currency

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used by callers that need a currency before any locale is known.
const DefaultLocale = "en_US"

// parseLocale accepts "de_AT" and "de-AT" forms and requires an explicit region.
// The returned key is the normalized "lang_REGION" form.
func parseLocale(locale string) (language.Tag, string, error) {
	trimmed := strings.TrimSpace(locale)
	if trimmed == "" {
		return language.Und, "", newLookupError(ErrLocaleNotFound, "locale %q not found", locale)
	}

	tag, err := language.Parse(strings.ReplaceAll(trimmed, "_", "-"))
	if err != nil {
		return language.Und, "", newLookupError(ErrLocaleNotFound, "locale %q not found", locale)
	}

	region, conf := tag.Region()
	if conf != language.Exact {
		return language.Und, "", newLookupError(ErrRegionNotFound, "no region found within the locale %q", locale)
	}

	base, _ := tag.Base()
	return tag, base.String() + "_" + region.String(), nil
}

// IsLocale reports whether locale names a known language with a region.
func IsLocale(locale string) bool {
	_, _, err := parseLocale(locale)
	return err == nil
}

// NormalizeLocale returns the "lang_REGION" form of locale.
func NormalizeLocale(locale string) (string, error) {
	_, key, err := parseLocale(locale)
	return key, err
}
