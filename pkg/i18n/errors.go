package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("i18n: nil translation adapter")
	ErrInvalidTranslations  = errors.New("i18n: invalid translations")
	ErrUnsupportedFileType  = errors.New("i18n: unsupported translation file type")
	ErrFailedToParseYAML    = errors.New("i18n: failed to parse YAML content")
	ErrFailedToParseJSON    = errors.New("i18n: failed to parse JSON content")
	ErrFailedToReadFile     = errors.New("i18n: failed to read translation file")
	ErrLoadingCancelled     = errors.New("i18n: loading translations cancelled")
	ErrNoTranslationsLoaded = errors.New("i18n: no translation files found")
)
