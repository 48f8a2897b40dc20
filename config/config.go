package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"kaalchakra-cms/logger"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port    string `env:"PORT" envDefault:"8080"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	SiteURL string `env:"SITE_URL" envDefault:"https://kaalchakra.news"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`

	// Database
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     int    `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"kaalchakra"`
	DBSSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`

	// Auth
	JWTSecret     string        `env:"JWT_SECRET" envDefault:"your-secret-key-change-this-in-production"`
	JWTExpiration time.Duration `env:"JWT_EXPIRATION" envDefault:"24h"`

	// Cache; an empty RedisURL selects the in-memory cache.
	RedisURL    string        `env:"REDIS_URL"`
	RedisPrefix string        `env:"REDIS_PREFIX" envDefault:"kaalchakra:"`
	CacheTTL    time.Duration `env:"CACHE_TTL" envDefault:"10m"`

	// Public comment submission limits, per client IP.
	CommentRatePerMinute int `env:"COMMENT_RATE_PER_MINUTE" envDefault:"5"`
	CommentRateBurst     int `env:"COMMENT_RATE_BURST" envDefault:"3"`

	// Seeded owner account
	SeedOwnerName     string `env:"SEED_OWNER_NAME" envDefault:"Owner"`
	SeedOwnerEmail    string `env:"SEED_OWNER_EMAIL" envDefault:"owner@kaalchakra.news"`
	SeedOwnerPassword string `env:"SEED_OWNER_PASSWORD"`
}

// Load reads a .env file when present and parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("no .env file found")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.IsProduction() && cfg.JWTSecret == "your-secret-key-change-this-in-production" {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN is the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}
