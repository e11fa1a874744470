package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"time"
)

// Manager ties a Transport to a Store.
type Manager struct {
	store     Store
	transport Transport
	config    Config
	owned     io.Closer
}

// New creates a session manager. Without WithTransport the manager signs a
// cookie with the configured secret and fails when the secret is too short.
// Without WithStore it creates a memory store that Close stops.
func New(opts ...Option) (*Manager, error) {
	m := &Manager{config: DefaultConfig()}
	for _, opt := range opts {
		opt(m)
	}

	if m.transport == nil {
		t, err := NewCookieTransport(m.config.CookieName, m.config.Secret, m.config.SecureCookies)
		if err != nil {
			return nil, err
		}
		m.transport = t
	}

	if m.store == nil {
		memory := NewMemoryStore(m.config.CleanupInterval)
		m.store, m.owned = memory, memory
	}

	return m, nil
}

// Ensure returns the current session or starts an anonymous one.
func (m *Manager) Ensure(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, error) {
	if s, err := m.Get(ctx, r); err == nil {
		m.touch(ctx, s)
		return s, nil
	}

	s, err := m.start(ctx, nil)
	if err != nil {
		return nil, err
	}
	if err := m.transport.SetToken(w, s.Token, m.config.idle(false)); err != nil {
		_ = m.store.Delete(ctx, s.Token)
		return nil, err
	}
	return s, nil
}

// Get retrieves an existing, unexpired session.
func (m *Manager) Get(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil, err
	}

	s, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if s.IsExpired() {
		_ = m.store.Delete(ctx, token)
		return nil, ErrSessionExpired
	}
	return s, nil
}

// Save persists changes made to session data.
func (m *Manager) Save(ctx context.Context, s *Session) error {
	if s == nil {
		return ErrInvalidSession
	}
	return m.store.Update(ctx, s)
}

// Authenticate binds userID to the session and rotates its token. Data
// already in the session survives the rotation.
func (m *Manager) Authenticate(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int64) (*Session, error) {
	s, err := m.Get(ctx, r)
	if err != nil {
		s, err = m.start(ctx, &userID)
	} else {
		err = m.rotate(ctx, s, userID)
	}
	if err != nil {
		return nil, err
	}

	if err := m.transport.SetToken(w, s.Token, m.config.idle(true)); err != nil {
		return nil, err
	}
	return s, nil
}

// Destroy deletes the session and clears the client token.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if token, err := m.transport.GetToken(r); err == nil && token != "" {
		_ = m.store.Delete(ctx, token)
	}
	return m.transport.ClearToken(w)
}

// Close stops the memory store the manager created itself. Stores passed
// with WithStore are left to the caller.
func (m *Manager) Close() error {
	if m.owned == nil {
		return nil
	}
	return m.owned.Close()
}

func (m *Manager) start(ctx context.Context, userID *int64) (*Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	s := NewSession(token, userID, m.config.expiry(now, now, userID != nil).Sub(now))
	if err := m.store.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// rotate moves s to a fresh token before the old one is dropped, so a
// failed write leaves the browser signed in to the previous session.
func (m *Manager) rotate(ctx context.Context, s *Session, userID int64) error {
	token, err := newToken()
	if err != nil {
		return err
	}

	old := s.Token
	s.Token = token
	s.UserID = &userID
	s.ExpiresAt = m.config.expiry(s.CreatedAt, time.Now(), true)
	s.Touch()

	if err := m.store.Create(ctx, s); err != nil {
		s.Token = old
		return err
	}
	_ = m.store.Delete(ctx, old)
	return nil
}

// touch records activity at most once per ActivityUpdateThreshold. A failed
// write only costs an extra attempt on the next request.
func (m *Manager) touch(ctx context.Context, s *Session) {
	if time.Since(s.LastActivityAt) < m.config.ActivityUpdateThreshold {
		return
	}
	now := time.Now()
	if err := m.store.Touch(ctx, s.Token, now); err == nil {
		s.LastActivityAt = now
	}
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
