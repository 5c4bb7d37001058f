// Package config loads environment-driven configuration structs via
// github.com/caarlos0/env field tags, with a one-time .env bootstrap through
// github.com/joho/godotenv for local development.
//
//	type RedisConfig struct {
//	    URL string `env:"REDIS_URL,required"`
//	}
//
//	var cfg RedisConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// MustLoad panics instead of returning the error, for configuration the
// process cannot run without.
package config
