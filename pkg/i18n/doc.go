// Package i18n loads translations and resolves the request language.
//
// Translations are nested maps keyed by language code, loaded through a
// TranslationAdapter (MapAdapter, or FSAdapter over embed.FS / os.DirFS with
// YAML or JSON files):
//
//	//go:embed translations
//	var files embed.FS
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(files, "translations"))
//	msg := tr.T("de_AT", "validator.notAlnum", "value", "a#")
//
// Keys are dotted paths into the nested map. Placeholders use the %{name}
// form and are filled from name/value argument pairs. Regional languages fall
// back to their base language; missing keys fall back to the key itself.
//
// *Translator satisfies validator.Translator, so it can be attached to
// validators and to the input filter factory.
//
// Middleware detects the language from the "lang" query parameter, the
// "lang" cookie or the Accept-Language header and stores it in the request
// context; GetLocale reads it back.
package i18n
