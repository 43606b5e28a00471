package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/i18n"
)

func TestDefaultLangExtractor(t *testing.T) {
	t.Parallel()

	extract := i18n.DefaultLangExtractor(i18n.WithSupportedLanguages("en", "de"))

	tests := []struct {
		name   string
		target string
		cookie string
		accept string
		want   string
	}{
		{"query", "/?lang=de", "", "en", "de"},
		{"unsupported query falls through", "/?lang=fr", "de", "", "de"},
		{"cookie", "/", "de", "en", "de"},
		{"accept language", "/", "", "fr;q=0.9, de-AT;q=0.8", "de"},
		{"nothing matches", "/", "", "fr", ""},
		{"no hints", "/", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: "lang", Value: tt.cookie})
			}
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			assert.Equal(t, tt.want, extract(r))
		})
	}
}

func TestDefaultLangExtractor_Unrestricted(t *testing.T) {
	t.Parallel()

	extract := i18n.DefaultLangExtractor(i18n.WithQueryParamName("locale"), i18n.WithCookieName(""))
	r := httptest.NewRequest(http.MethodGet, "/?locale=de_AT", nil)
	assert.Equal(t, "de_AT", extract(r))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Language", "pt-BR, en;q=0.5")
	assert.Equal(t, "pt-BR", extract(r))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := i18n.Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.GetLocale(r.Context())
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?lang=de", nil))
	assert.Equal(t, "de", got)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, i18n.DefaultLanguage, got)
}
