package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
)

// TranslationAdapter loads translations keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter map[string]map[string]any

func (a MapAdapter) Load(context.Context) (map[string]map[string]any, error) {
	out := make(map[string]map[string]any, len(a))
	for lang, msgs := range a {
		out[lang] = maps.Clone(msgs)
	}
	return out, nil
}

// FSAdapter loads every .yaml, .yml and .json file under dir of an fs.FS.
// Files are read in lexical order; later files extend or override earlier
// ones per language. Works with embed.FS and os.DirFS alike.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	var files []string
	err := fs.WalkDir(a.fsys, a.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, perr := NewParserForFile(p); perr == nil {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationsLoaded, a.dir)
	}
	slices.Sort(files)

	out := make(map[string]map[string]any)
	for _, p := range files {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		content, err := fs.ReadFile(a.fsys, p)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		parser, _ := NewParserForFile(p)
		parsed, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(p), err)
		}
		for lang, msgs := range parsed {
			if out[lang] == nil {
				out[lang] = make(map[string]any)
			}
			mergeMessages(out[lang], msgs)
		}
	}
	return out, nil
}

// mergeMessages copies src into dst, merging nested maps recursively.
func mergeMessages(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeMessages(dstMap, srcMap)
			continue
		}
		dst[k] = v
	}
}
