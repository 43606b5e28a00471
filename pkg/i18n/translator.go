package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// DefaultLanguage is used when no language is requested or detected.
const DefaultLanguage = "en"

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Translator looks up messages by language and dotted key. It satisfies
// validator.Translator so validators can render translated messages.
type Translator struct {
	mu            sync.RWMutex
	translations  map[string]map[string]any
	adapter       TranslationAdapter
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// NewTranslator loads translations from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		adapter:       adapter,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.With(logger.Component("i18n"))

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload replaces the translations with a fresh load from the adapter.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	for lang, msgs := range translations {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidTranslations)
		}
		if msgs == nil {
			return fmt.Errorf("%w: nil translations for %q", ErrInvalidTranslations, lang)
		}
	}

	t.mu.Lock()
	t.translations = translations
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.SupportedLanguages()))
	return nil
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Sorted(maps.Keys(t.translations))
}

func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang. args are name/value pairs substituted into
// %{name} placeholders. Missing translations return the key (with
// placeholders substituted) unless fallback to key is disabled.
//
// A regional lang such as "de_AT" or "de-AT" falls back to "de". An empty
// lang uses the default language.
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		return t.missing(lang, key, args)
	}
	return substitute(tmpl, args)
}

// N translates a plural key. It tries key.zero (n == 0), key.one (n == 1)
// and key.other, then key itself. A "count" argument is added when absent.
func (t *Translator) N(lang, key string, n int, args ...string) string {
	if !hasArg(args, "count") {
		args = append(slices.Clip(args), "count", strconv.Itoa(n))
	}

	var forms []string
	switch n {
	case 0:
		forms = []string{key + ".zero", key + ".other"}
	case 1:
		forms = []string{key + ".one"}
	default:
		forms = []string{key + ".other"}
	}
	forms = append(forms, key)

	for _, k := range forms {
		if tmpl, ok := t.lookup(lang, k); ok {
			return substitute(tmpl, args)
		}
	}
	return t.missing(lang, key, args)
}

// Tc translates key using the language stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if lang == "" {
		lang = t.defaultLang
	}
	for _, candidate := range langCandidates(lang) {
		msgs, ok := t.translations[candidate]
		if !ok {
			continue
		}
		if v, ok := find(msgs, key); ok {
			return v, true
		}
	}
	return "", false
}

func (t *Translator) missing(lang, key string, args []string) string {
	if t.logMissing {
		t.logger.Warn("translation not found", logger.Locale(lang), slog.String("key", key))
	}
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// langCandidates returns lang followed by its base language, if different.
func langCandidates(lang string) []string {
	if base, _, ok := strings.Cut(strings.ReplaceAll(lang, "-", "_"), "_"); ok && base != "" {
		return []string{lang, base}
	}
	return []string{lang}
}

// find resolves a flat key first, then walks nested maps by dot separated parts.
func find(m map[string]any, key string) (string, bool) {
	if v, ok := m[key]; ok {
		return stringValue(v)
	}

	current := m
	parts := strings.Split(key, ".")
	for i, part := range parts {
		v, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			return stringValue(v)
		}
		next, ok := v.(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}

func stringValue(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case fmt.Stringer:
		return val.String(), true
	case int, int64, float64, bool:
		return fmt.Sprint(val), true
	}
	return "", false
}

func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return v
		}
		return match
	})
}

func hasArg(args []string, name string) bool {
	for i := 0; i+1 < len(args); i += 2 {
		if args[i] == name {
			return true
		}
	}
	return false
}
