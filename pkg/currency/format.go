package currency

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const (
	symbolPlaceholder = "¤"
	fallbackPattern   = "¤ #,##0.00"
)

//go:embed locales.yaml
var localesYAML []byte

// NumberFormat describes how a locale renders currency amounts.
type NumberFormat struct {
	Decimal     string `json:"decimal" yaml:"decimal"`
	Group       string `json:"group" yaml:"group"`
	SymbolFirst bool   `json:"symbol_first" yaml:"-"`
	Spacing     string `json:"spacing" yaml:"-"`
}

type localeEntry struct {
	Decimal string `yaml:"decimal"`
	Group   string `yaml:"group"`
	Pattern string `yaml:"pattern"`
}

var localeTable = mustLoadLocales(localesYAML)

func mustLoadLocales(data []byte) map[string]NumberFormat {
	var entries map[string]localeEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		panic(fmt.Sprintf("currency: invalid embedded locale table: %v", err))
	}
	out := make(map[string]NumberFormat, len(entries))
	for locale, e := range entries {
		nf := parsePattern(e.Pattern)
		nf.Decimal = e.Decimal
		nf.Group = e.Group
		out[locale] = nf
	}
	return out
}

// parsePattern reads the symbol position and the text between the symbol and
// the number from a CLDR style pattern.
func parsePattern(pattern string) NumberFormat {
	var nf NumberFormat
	if rest, ok := strings.CutPrefix(pattern, symbolPlaceholder); ok {
		nf.SymbolFirst = true
		if idx := strings.IndexAny(rest, "#0"); idx >= 0 {
			nf.Spacing = rest[:idx]
		}
		return nf
	}
	if rest, ok := strings.CutSuffix(pattern, symbolPlaceholder); ok {
		if idx := strings.LastIndexAny(rest, "#0"); idx >= 0 {
			nf.Spacing = rest[idx+1:]
		}
	}
	return nf
}

// lookupNumberFormat resolves the format for a locale key such as "de_AT",
// trying the regional entry, then the language entry, then the number
// symbols golang.org/x/text knows for tag.
func lookupNumberFormat(locale string, tag language.Tag) NumberFormat {
	if nf, ok := localeTable[locale]; ok {
		return nf
	}
	base, _ := tag.Base()
	if nf, ok := localeTable[base.String()]; ok {
		return nf
	}

	nf := parsePattern(fallbackPattern)
	nf.Decimal, nf.Group = detectSeparators(tag)
	return nf
}

// detectSeparators formats a known number with an x/text printer and reads
// back the separators it used.
func detectSeparators(tag language.Tag) (decimal, group string) {
	r := []rune(message.NewPrinter(tag).Sprintf("%.2f", 1234.5))
	// expect 1<group>234<decimal>50
	if len(r) < 7 || r[0] != '1' || string(r[len(r)-6:len(r)-3]) != "234" {
		return ".", ","
	}
	return string(r[len(r)-3]), string(r[1 : len(r)-6])
}

// formatNumber renders amount rounded to precision decimals using the
// separators of nf. The sign is reported separately and only for amounts that
// do not round to zero.
func formatNumber(amount float64, precision int, nf NumberFormat) (string, bool) {
	digits := fmt.Sprintf("%.*f", precision, amount)
	digits, negative := strings.CutPrefix(digits, "-")
	if strings.Trim(digits, "0.") == "" {
		negative = false
	}

	intPart, frac, _ := strings.Cut(digits, ".")

	var b strings.Builder
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(nf.Group)
		b.WriteString(intPart[i : i+3])
	}
	if frac != "" {
		b.WriteString(nf.Decimal)
		b.WriteString(frac)
	}
	return b.String(), negative
}
