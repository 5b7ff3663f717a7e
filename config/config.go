// Package config loads service settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port            string        `env:"HELP_PORT" envDefault:"8080"`
	RedisAddr       string        `env:"HELP_REDIS_ADDR"`
	CacheTTL        time.Duration `env:"HELP_CACHE_TTL" envDefault:"1h"`
	RateLimit       int           `env:"HELP_RATE_LIMIT" envDefault:"60"`
	RateWindow      time.Duration `env:"HELP_RATE_WINDOW" envDefault:"1m"`
	LogLevel        string        `env:"HELP_LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"HELP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.RateLimit <= 0 {
		return Config{}, fmt.Errorf("HELP_RATE_LIMIT must be positive, got %d", cfg.RateLimit)
	}
	if cfg.RateWindow <= 0 {
		return Config{}, fmt.Errorf("HELP_RATE_WINDOW must be positive, got %s", cfg.RateWindow)
	}
	return cfg, nil
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
