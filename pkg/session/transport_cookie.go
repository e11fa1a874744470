package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const minSecretLength = 32

// CookieTransport keeps the token in an HMAC-signed, HTTP-only cookie.
type CookieTransport struct {
	name   string
	secret []byte
	secure bool
}

// NewCookieTransport creates a cookie transport. secret must be at least 32
// characters long.
func NewCookieTransport(name, secret string, secure bool) (*CookieTransport, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("%w: need at least %d chars", ErrSecretTooShort, minSecretLength)
	}
	return &CookieTransport{name: name, secret: []byte(secret), secure: secure}, nil
}

func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	c, err := r.Cookie(t.name)
	if err != nil || c.Value == "" {
		return "", ErrSessionNotFound
	}
	return t.verify(c.Value)
}

func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name,
		Value:    t.sign(token),
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (t *CookieTransport) sign(token string) string {
	return token + "." + t.mac(token)
}

func (t *CookieTransport) verify(value string) (string, error) {
	token, sig, ok := strings.Cut(value, ".")
	if !ok || token == "" {
		return "", ErrInvalidToken
	}
	if subtle.ConstantTimeCompare([]byte(sig), []byte(t.mac(token))) != 1 {
		return "", ErrInvalidToken
	}
	return token, nil
}

func (t *CookieTransport) mac(token string) string {
	h := hmac.New(sha256.New, t.secret)
	h.Write([]byte(token))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}
