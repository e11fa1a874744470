package session

import "errors"

var (
	ErrInvalidSession  = errors.New("session.invalid")
	ErrSessionExpired  = errors.New("session.expired")
	ErrSessionNotFound = errors.New("session.not_found")
	ErrTokenGeneration = errors.New("session.token_generation_failed")
	ErrInvalidToken    = errors.New("session.invalid_token")
	ErrSecretTooShort  = errors.New("session.secret_too_short")
)
