package i18n

import "context"

type langContextKey struct{}

// WithLanguage stores the request language in ctx.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langContextKey{}, lang)
}

// LanguageFromContext returns the stored language or fallback.
func LanguageFromContext(ctx context.Context, fallback string) string {
	if lang, ok := ctx.Value(langContextKey{}).(string); ok && lang != "" {
		return lang
	}
	return fallback
}
