package session

import "time"

// Option configures the Manager.
type Option func(*Manager)

// WithStore replaces the default memory store. The caller keeps ownership
// and closes it.
func WithStore(store Store) Option {
	return func(m *Manager) { m.store = store }
}

// WithTransport replaces the signed cookie.
func WithTransport(transport Transport) Option {
	return func(m *Manager) { m.transport = transport }
}

func WithConfig(config Config) Option {
	return func(m *Manager) { m.config = config }
}

func WithSecret(secret string) Option {
	return func(m *Manager) { m.config.Secret = secret }
}

// WithCleanupInterval sets the sweep interval of the default memory store.
// Zero disables the sweep goroutine.
func WithCleanupInterval(interval time.Duration) Option {
	return func(m *Manager) { m.config.CleanupInterval = interval }
}
