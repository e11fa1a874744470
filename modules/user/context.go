package user

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/enroll/pkg/logger"
)

type contextKey struct{}

func WithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// FromContext returns the signed-in user, if any.
func FromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(contextKey{}).(*User)
	return u, ok && u != nil
}

// MustFromContext panics without a user. Use it only behind RequireAuth.
func MustFromContext(ctx context.Context) *User {
	u, ok := FromContext(ctx)
	if !ok {
		panic("user: no user in context")
	}
	return u
}

// LoggerExtractor adds the user id and role to log records.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		u, ok := FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		id := u.ID
		return logger.Group("user", logger.UserID(&id), logger.Role(string(u.Role))), true
	}
}
