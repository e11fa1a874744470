package i18n

import (
	"net/http"
	"strings"
)

const (
	LangCookie = "lang"
	LangQuery  = "lang"
)

// Middleware resolves the request language and stores it in the context.
// A supported ?lang value is remembered in a cookie.
func Middleware(t *Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if q := strings.TrimSpace(r.URL.Query().Get(LangQuery)); q != "" {
				if lang, ok := t.Supported(q); ok {
					http.SetCookie(w, &http.Cookie{
						Name:     LangCookie,
						Value:    lang,
						Path:     "/",
						MaxAge:   365 * 24 * 60 * 60,
						SameSite: http.SameSiteLaxMode,
					})
				}
			}

			next.ServeHTTP(w, r.WithContext(WithLanguage(r.Context(), Resolve(t, r))))
		})
	}
}

// Resolve picks the language for r: ?lang query, then the lang cookie, then
// Accept-Language.
func Resolve(t *Translator, r *http.Request) string {
	if lang, ok := t.Supported(strings.TrimSpace(r.URL.Query().Get(LangQuery))); ok {
		return lang
	}
	if c, err := r.Cookie(LangCookie); err == nil {
		if lang, ok := t.Supported(c.Value); ok {
			return lang
		}
	}
	return t.Match(r.Header.Get("Accept-Language"))
}
