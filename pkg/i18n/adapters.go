package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// TranslationAdapter loads translations keyed by language, then by flat key.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]string, error)
}

// MapAdapter serves translations from memory. Handy in tests.
type MapAdapter struct {
	Translations map[string]map[string]string
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]string, error) {
	out := make(map[string]map[string]string, len(a.Translations))
	for lang, m := range a.Translations {
		out[lang] = maps.Clone(m)
	}
	return out, nil
}

// FSAdapter reads every file in dir the parser supports. Works with embed.FS
// and os.DirFS alike.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil {
		parser = NewYAMLParser()
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]string, error) {
	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	all := make(map[string]map[string]string)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		parsed, err := a.parser.Parse(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for lang, m := range parsed {
			if all[lang] == nil {
				all[lang] = make(map[string]string, len(m))
			}
			maps.Copy(all[lang], m)
		}
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslations, a.dir)
	}
	return all, nil
}
