// Package currency formats monetary amounts for a locale.
//
// A Currency is created from a locale that carries a region. The currency
// defaults to the tender of that region and can be chosen explicitly:
//
//	c, err := currency.New("de_AT")
//	s, _ := c.Format(1234.56) // "€ 1.234,56"
//
//	usd, _ := c.With(currency.WithCurrency("USD"), currency.WithDisplay(currency.UseShortName))
//
// Separators and symbol placement come from an embedded locale table; locales
// missing from it use the language entry, then the number symbols known to
// golang.org/x/text. Symbols and standard precisions come from golang.org/x/text.
//
// Resolved locale data may be kept in a shared cache.Store:
//
//	currency.SetCache(cache.NewMemoryStore())
//	defer currency.RemoveCache()
//
// Entries are JSON encoded under "currency:<locale>:<code>".
package currency
