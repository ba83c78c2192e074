// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - the default .env file in the working directory is read once, lazily,
//     and never overrides variables already set in the process environment;
//   - LoadEnv reads additional .env files explicitly;
//   - Load parses the environment into any struct using `env` and
//     `envDefault` tags and caches the result per type.
//
// Usage:
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Types implementing encoding.TextUnmarshaler (toast.Position, toast.Type)
// are decoded through their UnmarshalText method.
//
// Reset clears the cache, which tests use to reload a type after t.Setenv.
package config
