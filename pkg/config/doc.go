// Package config loads typed configuration from environment variables using
// github.com/caarlos0/env, with optional .env files read by
// github.com/joho/godotenv.
//
// Load caches each configuration type after the first successful parse, so
// packages can ask for their own settings without threading a config value
// through every constructor. Parse skips the cache.
//
//	var app config.App
//	config.MustLoad(&app)
//
//	var api apiclient.Config
//	if err := config.Load(&api); err != nil {
//		return err
//	}
package config
