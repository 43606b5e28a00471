package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
	"github.com/dmitrymomot/formkit/pkg/viewhelper"
)

//go:embed signup.yaml
var signupSpec []byte

//go:embed templates
var templatesFS embed.FS

const csrfCookie = "formkit_csrf"

type signup struct {
	Email    string `form:"email" validate:"required,email"`
	Nickname string `form:"nickname"`
	Plan     string `form:"plan" validate:"required,oneof=free pro team"`
	Terms    string `form:"terms" validate:"eq=1"`
	Address  struct {
		City string `form:"city" validate:"required"`
		Zip  int    `form:"zip"`
	} `form:"address"`
}

type signupView struct {
	Locale    string
	Action    string
	Token     string
	ProPrice  string
	ProAmount float64
	Values    map[string]string
	Errors    []string
	Result    *signup
}

type app struct {
	factory   *form.Factory
	price     *viewhelper.Currency
	proAmount float64
	tmpl      *template.Template
	log       *slog.Logger
}

func newApp(price *viewhelper.Currency, proAmount float64, log *slog.Logger) (*app, error) {
	tmpl, err := template.New("signup.html").
		Funcs(price.FuncMap()).
		ParseFS(templatesFS, "templates/signup.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	factory := form.NewFactory(form.WithFactoryLogger(log))
	// Fail on startup rather than on the first request.
	if _, err := factory.CreateFromYAML(signupSpec); err != nil {
		return nil, err
	}

	return &app{
		factory:   factory,
		price:     price,
		proAmount: proAmount,
		tmpl:      tmpl,
		log:       log.With(logger.Component("demo")),
	}, nil
}

func (a *app) newForm() (*form.Form, *form.Csrf, error) {
	f, err := a.factory.CreateFromYAML(signupSpec, form.WithLogger(a.log))
	if err != nil {
		return nil, nil, err
	}
	el, ok := f.Get("csrf")
	if !ok {
		return nil, nil, errors.New("signup form has no csrf element")
	}
	return f, el.(*form.Csrf), nil
}

func (a *app) showSignup(w http.ResponseWriter, r *http.Request) {
	f, csrf, err := a.newForm()
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if err := f.Prepare(); err != nil {
		a.fail(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookie,
		Value:    csrf.Token(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	a.render(w, r, http.StatusOK, a.view(r.Context(), f, csrf.Token()))
}

func (a *app) submitSignup(w http.ResponseWriter, r *http.Request) {
	f, csrf, err := a.newForm()
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if c, err := r.Cookie(csrfCookie); err == nil {
		csrf.SetToken(c.Value)
	}

	if err := f.SetRequest(r); err != nil {
		a.render(w, r, http.StatusBadRequest, a.view(r.Context(), f, csrf.Token()))
		return
	}

	valid, err := f.IsValid()
	if err != nil {
		a.fail(w, r, err)
		return
	}

	view := a.view(r.Context(), f, csrf.Token())
	if !valid {
		view.Errors = flattenMessages("", f.FormMessages())
		a.render(w, r, http.StatusUnprocessableEntity, view)
		return
	}

	var result signup
	if err := f.Bind(&result); err != nil {
		if verrs := validator.ExtractValidationErrors(err); verrs != nil {
			view.Errors = []string{verrs.Error()}
			a.render(w, r, http.StatusUnprocessableEntity, view)
			return
		}
		a.fail(w, r, err)
		return
	}

	a.log.InfoContext(r.Context(), "signup accepted", slog.String("plan", result.Plan))
	view.Result = &result
	a.render(w, r, http.StatusOK, view)
}

func (a *app) view(ctx context.Context, f *form.Form, token string) signupView {
	action, _ := f.Attribute("action")
	price, err := a.price.FormatContext(ctx, a.proAmount)
	if err != nil {
		a.log.WarnContext(ctx, "price formatting failed", logger.Error(err))
	}

	values := map[string]string{}
	for _, el := range f.Elements() {
		if s, ok := el.Value().(string); ok {
			values[el.Name()] = s
		}
	}

	return signupView{
		Locale:    i18n.GetLocale(ctx),
		Action:    action,
		Token:     token,
		ProPrice:  price,
		ProAmount: a.proAmount,
		Values:    values,
	}
}

func (a *app) render(w http.ResponseWriter, r *http.Request, status int, view signupView) {
	var buf strings.Builder
	if err := a.tmpl.Execute(&buf, view); err != nil {
		a.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(buf.String()))
}

func (a *app) fail(w http.ResponseWriter, r *http.Request, err error) {
	a.log.ErrorContext(r.Context(), "request failed", logger.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// flattenMessages turns nested form messages into sorted "path: message" lines.
func flattenMessages(prefix string, msgs map[string]any) []string {
	var out []string
	for name, v := range msgs {
		path := name
		if prefix != "" {
			path = prefix + "[" + name + "]"
		}
		switch m := v.(type) {
		case validator.Messages:
			for _, msg := range m {
				out = append(out, path+": "+msg)
			}
		case map[string]any:
			out = append(out, flattenMessages(path, m)...)
		}
	}
	sort.Strings(out)
	return out
}
