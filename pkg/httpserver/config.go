package httpserver

import "time"

// Config is loaded from the environment. WriteTimeout stays 0 by default so
// datastar SSE responses are not cut off mid-stream.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":3000"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"0s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

var defaults = Config{
	Addr:            ":3000",
	ReadTimeout:     15 * time.Second,
	IdleTimeout:     120 * time.Second,
	ShutdownTimeout: 5 * time.Second,
}

// withDefaults fills zero fields. A zero WriteTimeout is a valid setting and
// is left alone.
func (c Config) withDefaults() Config {
	if c.Addr == "" {
		c.Addr = defaults.Addr
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = defaults.ReadTimeout
	}
	if c.WriteTimeout < 0 {
		c.WriteTimeout = 0
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = defaults.IdleTimeout
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = defaults.ShutdownTimeout
	}
	return c
}
