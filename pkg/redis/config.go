package redis

import "time"

// Config configures the redis connection. An empty URL means redis is not
// used and sessions stay in memory.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"` // redis://:password@localhost:6379/0
	KeyPrefix      string        `env:"REDIS_SESSION_PREFIX" envDefault:"enroll:session:"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"15s"`
}

func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
