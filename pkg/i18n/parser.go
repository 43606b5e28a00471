package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes a translation document keyed by language code.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(ctx context.Context, content []byte) (map[string]map[string]any, error)

func (fn ParserFunc) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	return fn(ctx, content)
}

// NewParserForFile picks a parser by file extension: .yaml, .yml or .json.
func NewParserForFile(filename string) (Parser, error) {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "yaml", "yml":
		return YAMLParser(), nil
	case "json":
		return JSONParser(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileType, filename)
}

// YAMLParser parses documents of the form:
//
//	en:
//	  validator:
//	    notAlnum: "..."
func YAMLParser() Parser {
	return ParserFunc(func(ctx context.Context, content []byte) (map[string]map[string]any, error) {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		var data map[string]any
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, errors.Join(ErrFailedToParseYAML, err)
		}
		return splitLanguages(data)
	})
}

// JSONParser parses the JSON equivalent of the YAML layout.
func JSONParser() Parser {
	return ParserFunc(func(ctx context.Context, content []byte) (map[string]map[string]any, error) {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		var data map[string]any
		if err := json.Unmarshal(content, &data); err != nil {
			return nil, errors.Join(ErrFailedToParseJSON, err)
		}
		return splitLanguages(data)
	})
}

func splitLanguages(data map[string]any) (map[string]map[string]any, error) {
	out := make(map[string]map[string]any, len(data))
	for lang, v := range data {
		msgs, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q must map to an object, got %T", ErrInvalidTranslations, lang, v)
		}
		out[lang] = msgs
	}
	return out, nil
}
