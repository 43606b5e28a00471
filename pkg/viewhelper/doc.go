// Package viewhelper provides helpers for rendering values in views.
//
// The Currency helper formats amounts with a default currency and can be used
// from html/template through FuncMap, from templ through Component, or
// directly:
//
//	h, err := viewhelper.NewCurrencyForLocale("de_AT")
//	s, err := h.Format(1234.56) // "€ 1.234,56"
//	s, err = h.Format(10, currency.WithCurrency("USD"))
package viewhelper
