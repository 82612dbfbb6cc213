package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the single environment-sourced configuration struct,
// constructed once at startup and passed by reference to the components
// that need it.
//
// OpenAIAPIKey is feature-gating rather than mandatory: when absent the
// example endpoint answers with a configuration error per request instead
// of the process refusing to start.
type Config struct {
	// HTTP server
	Host string `env:"HOST"`
	Port int    `env:"PORT" envDefault:"8080"`

	// CORSOrigin is echoed as Access-Control-Allow-Origin
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"*"`

	// Player storage backend: "memory" or "postgres"
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	DBHost      string `env:"DB_HOST" envDefault:"127.0.0.1"`
	DBPort      int    `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER" envDefault:"wortle"`
	DBPassword  string `env:"DB_PASS"`
	DBName      string `env:"DB_NAME" envDefault:"wortle"`

	// Rate limiter / cache backends: "memory" or "redis"
	RateLimitBackend string `env:"RATE_LIMIT_BACKEND" envDefault:"memory"`
	CacheBackend     string `env:"CACHE_BACKEND" envDefault:"memory"`
	RedisURL         string `env:"REDIS_URL"`

	// OpenAI
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
}

// Load parses configuration from the process environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
