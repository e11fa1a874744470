package config

import "strings"

// App holds settings shared by the web and terminal clients.
type App struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	ServiceName     string `env:"SERVICE_NAME" envDefault:"enroll"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"ko"`
}

func (a App) IsProduction() bool {
	switch strings.ToLower(a.Env) {
	case "production", "prod":
		return true
	}
	return false
}
