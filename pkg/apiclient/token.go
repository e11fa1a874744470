package apiclient

import "context"

// TokenSource supplies the bearer token for authenticated requests.
// An empty token means the request goes out without an Authorization header.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// StaticToken always returns token.
func StaticToken(token string) TokenSource {
	return TokenFunc(func(context.Context) (string, error) { return token, nil })
}

type tokenCtxKey struct{}

// WithToken stores a bearer token in ctx for ContextToken.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey{}, token)
}

// TokenFromContext returns the token stored by WithToken.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenCtxKey{}).(string)
	return token
}

// ContextToken reads the token placed in the request context by WithToken.
// This is the default source.
func ContextToken() TokenSource {
	return TokenFunc(func(ctx context.Context) (string, error) {
		return TokenFromContext(ctx), nil
	})
}
