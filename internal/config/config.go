// Package config reads process settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server's process-level settings. Per-table settings live
// in the table YAML files.
type Config struct {
	HTTPAddr      string        `env:"DICE_HTTP_ADDR"      envDefault:":8080"`
	GRPCAddr      string        `env:"DICE_GRPC_ADDR"      envDefault:":9090"`
	ConfigDir     string        `env:"DICE_CONFIG_DIR"     envDefault:"config"`
	Table         string        `env:"DICE_TABLE"          envDefault:"default"`
	RedisURL      string        `env:"DICE_REDIS_URL"`
	SessionTTL    time.Duration `env:"DICE_SESSION_TTL"    envDefault:"30m"`
	WatchInterval time.Duration `env:"DICE_WATCH_INTERVAL" envDefault:"5s"`
	ChatHistory   int           `env:"DICE_CHAT_HISTORY"   envDefault:"200"`
	LogLevel      slog.Level    `env:"DICE_LOG_LEVEL"      envDefault:"info"`
	Seed          uint64        `env:"DICE_SEED"` // 0 => crypto source
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and checks Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL < 0 {
		return Config{}, fmt.Errorf("DICE_SESSION_TTL must be >= 0, got %s", cfg.SessionTTL)
	}
	if cfg.WatchInterval < 0 {
		return Config{}, fmt.Errorf("DICE_WATCH_INTERVAL must be >= 0, got %s", cfg.WatchInterval)
	}
	if cfg.ChatHistory < 0 {
		return Config{}, fmt.Errorf("DICE_CHAT_HISTORY must be >= 0, got %d", cfg.ChatHistory)
	}
	return cfg, nil
}
