// Package config loads typed configuration structs from environment
// variables.
//
// Structs declare their surface with `env` tags (parsed by
// github.com/caarlos0/env); defaults live next to the field in
// `envDefault` tags so the zero configuration is visible at the
// definition site. A local .env file, when present, is loaded once per
// process via godotenv before the first parse — convenient for
// development, inert in production.
//
// # Usage
//
//	type SessionConfig struct {
//		Timeout time.Duration `env:"SESSION_TIMEOUT" envDefault:"24h"`
//	}
//
//	var cfg SessionConfig
//	config.MustLoad(&cfg)
package config
