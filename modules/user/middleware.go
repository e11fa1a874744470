package user

import (
	"net/http"

	"github.com/dmitrymomot/enroll/handler"
	"github.com/dmitrymomot/enroll/pkg/apiclient"
	"github.com/dmitrymomot/enroll/pkg/session"
)

// Middleware puts the user kept in the session, and its access token for
// API calls, into the request context. It must run after the session
// middleware.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := session.FromContext(r.Context())
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		u, token, ok := Load(sess)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		ctx := WithUser(r.Context(), u)
		ctx = apiclient.WithToken(ctx, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth sends visitors without a user to redirectTo.
func RequireAuth(redirectTo string) func(http.Handler) http.Handler {
	return guard(redirectTo, func(u *User, ok bool) bool { return ok })
}

// RequireGuest sends signed-in users to redirectTo, e.g. away from the
// signup page.
func RequireGuest(redirectTo string) func(http.Handler) http.Handler {
	return guard(redirectTo, func(u *User, ok bool) bool { return !ok })
}

// RequireRole lets through only users holding one of roles. Everyone else,
// including visitors, goes to redirectTo.
func RequireRole(redirectTo string, roles ...Role) func(http.Handler) http.Handler {
	return guard(redirectTo, func(u *User, ok bool) bool { return ok && u.HasRole(roles...) })
}

func guard(redirectTo string, allow func(*User, bool) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := FromContext(r.Context())
			if allow(u, ok) {
				next.ServeHTTP(w, r)
				return
			}
			if err := handler.Redirect(redirectTo).Render(w, r); err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		})
	}
}
