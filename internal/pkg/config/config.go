package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8050"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Database DatabaseConfig
	Auth     AuthConfig
	Redis    RedisConfig
	Mail     MailConfig
}

// DatabaseConfig points at the hosted table/RPC REST service. The service
// key authorizes mutations and stored procedures; the API key covers reads.
type DatabaseConfig struct {
	URL        string        `env:"DB_API_URL"`
	APIKey     string        `env:"DB_API_KEY"`
	ServiceKey string        `env:"DB_SERVICE_KEY"`
	Timeout    time.Duration `env:"DB_TIMEOUT, default=10s"`
}

// AuthConfig points at the hosted authentication provider. When URL or key
// are empty they fall back to the database endpoint (the hosted platform
// serves both from one project URL).
type AuthConfig struct {
	URL     string        `env:"AUTH_API_URL"`
	APIKey  string        `env:"AUTH_API_KEY"`
	Timeout time.Duration `env:"AUTH_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// MailConfig enables the welcome mail; with an empty API key nothing is sent.
type MailConfig struct {
	ResendAPIKey string `env:"RESEND_API_KEY"`
	From         string `env:"MAIL_FROM, default=Mission Console <console@example.com>"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if cfg.Auth.URL == "" {
		cfg.Auth.URL = cfg.Database.URL
	}
	if cfg.Auth.APIKey == "" {
		cfg.Auth.APIKey = cfg.Database.APIKey
	}
	return &cfg
}
