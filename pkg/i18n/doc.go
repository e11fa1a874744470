// Package i18n translates UI texts of the web client.
//
// Translations are YAML files with one top-level key per language and
// nested keys flattened with dots. Language negotiation uses
// golang.org/x/text/language, so "ko-KR" matches "ko" and unknown
// preferences fall back to the default language (Korean).
//
//	t, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(nil, locales.FS, "."))
//	...
//	r.Use(i18n.Middleware(t))
//	...
//	t.Tc(ctx, "course.sort.recent")
//	t.Tc(ctx, "enroll.partial", "success", "2", "failed", "1")
//
// Validation messages are produced by the validator package and are not
// translated here.
package i18n
