package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// LangExtractor returns the language requested by r, or "" when undecided.
type LangExtractor func(r *http.Request) string

type extractorConfig struct {
	queryParam string
	cookieName string
	supported  []string
}

// ExtractorOption configures DefaultLangExtractor.
type ExtractorOption func(*extractorConfig)

func WithQueryParamName(name string) ExtractorOption {
	return func(c *extractorConfig) {
		c.queryParam = name
	}
}

func WithCookieName(name string) ExtractorOption {
	return func(c *extractorConfig) {
		c.cookieName = name
	}
}

// WithSupportedLanguages restricts detection to langs. Accept-Language
// entries are matched with golang.org/x/text/language, so "de-AT" matches "de".
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *extractorConfig) {
		c.supported = append(c.supported, langs...)
	}
}

// DefaultLangExtractor checks the "lang" query parameter, then the "lang"
// cookie, then the Accept-Language header.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &extractorConfig{queryParam: "lang", cookieName: "lang"}
	for _, opt := range opts {
		opt(cfg)
	}

	var matcher language.Matcher
	if len(cfg.supported) > 0 {
		tags := make([]language.Tag, 0, len(cfg.supported))
		for _, l := range cfg.supported {
			tags = append(tags, language.Make(l))
		}
		matcher = language.NewMatcher(tags)
	}

	accept := func(candidate string) string {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			return ""
		}
		if matcher == nil {
			return candidate
		}
		tag, err := language.Parse(candidate)
		if err != nil {
			return ""
		}
		if _, idx, conf := matcher.Match(tag); conf >= language.High {
			return cfg.supported[idx]
		}
		return ""
	}

	return func(r *http.Request) string {
		if cfg.queryParam != "" {
			if lang := accept(r.URL.Query().Get(cfg.queryParam)); lang != "" {
				return lang
			}
		}
		if cfg.cookieName != "" {
			if c, err := r.Cookie(cfg.cookieName); err == nil {
				if lang := accept(c.Value); lang != "" {
					return lang
				}
			}
		}
		return ParseAcceptLanguage(r.Header.Get("Accept-Language"), matcher, cfg.supported)
	}
}

// ParseAcceptLanguage picks the best entry of an Accept-Language header.
// With a nil matcher the highest weighted tag is returned as is.
func ParseAcceptLanguage(header string, matcher language.Matcher, supported []string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	if matcher == nil {
		return tags[0].String()
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No || idx >= len(supported) {
		return ""
	}
	return supported[idx]
}

// Middleware stores the detected language in the request context.
// A nil extractor uses DefaultLangExtractor; an undecided request gets
// DefaultLanguage.
func Middleware(extr LangExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = DefaultLanguage
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
