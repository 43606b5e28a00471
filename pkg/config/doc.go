// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing. Every formkit component that needs
// configuration exposes a struct with `env` tags (httpserver.Config,
// redis.Config, currency.CacheConfig) which is loaded with:
//
//	var cfg currency.CacheConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Each configuration type is parsed once per process and cached. Extra .env
// files are loaded with LoadEnv before the first Load; ResetCache clears the
// cache in tests.
package config
