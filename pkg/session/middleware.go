package session

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/enroll/pkg/logger"
)

// Middleware ensures every request carries a session in its context.
// Requests fail with 500 only when the store is unavailable.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.Ensure(r.Context(), w, r)
		if err != nil {
			slog.ErrorContext(r.Context(), "session unavailable", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}
