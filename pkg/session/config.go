package session

import "time"

// Config is loaded from the environment. Anonymous sessions carry signup
// drafts and toasts only, so they live much shorter than signed-in ones.
type Config struct {
	CookieName    string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`
	Secret        string `env:"SESSION_SECRET,required"` // at least 32 chars
	SecureCookies bool   `env:"SESSION_SECURE_COOKIES" envDefault:"false"`

	AnonIdleTimeout time.Duration `env:"SESSION_ANON_IDLE_TIMEOUT" envDefault:"30m"`
	AnonMaxLifetime time.Duration `env:"SESSION_ANON_MAX_LIFETIME" envDefault:"24h"`
	AuthIdleTimeout time.Duration `env:"SESSION_AUTH_IDLE_TIMEOUT" envDefault:"2h"`
	AuthMaxLifetime time.Duration `env:"SESSION_AUTH_MAX_LIFETIME" envDefault:"720h"`

	// ActivityUpdateThreshold is the minimum gap between two Touch calls
	// for the same session.
	ActivityUpdateThreshold time.Duration `env:"SESSION_ACTIVITY_UPDATE_THRESHOLD" envDefault:"5m"`

	// CleanupInterval drives the memory store sweep; 0 disables it.
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
}

// DefaultConfig returns the defaults without a secret.
func DefaultConfig() Config {
	return Config{
		CookieName:              "sid",
		AnonIdleTimeout:         30 * time.Minute,
		AnonMaxLifetime:         24 * time.Hour,
		AuthIdleTimeout:         2 * time.Hour,
		AuthMaxLifetime:         30 * 24 * time.Hour,
		ActivityUpdateThreshold: 5 * time.Minute,
		CleanupInterval:         5 * time.Minute,
	}
}

func (c Config) idle(authenticated bool) time.Duration {
	if authenticated {
		return c.AuthIdleTimeout
	}
	return c.AnonIdleTimeout
}

// expiry is the earlier of the idle deadline counted from now and the
// absolute deadline counted from createdAt.
func (c Config) expiry(createdAt, now time.Time, authenticated bool) time.Time {
	maxLifetime := c.AnonMaxLifetime
	if authenticated {
		maxLifetime = c.AuthMaxLifetime
	}

	idleAt := now.Add(c.idle(authenticated))
	if hardAt := createdAt.Add(maxLifetime); hardAt.Before(idleAt) {
		return hardAt
	}
	return idleAt
}

// NewFromConfig creates a Manager from cfg. Without WithStore or
// WithTransport it uses a memory store and a signed cookie.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}
