// Package config loads server configuration from the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Store backends
const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Config holds every setting the server reads at startup
type Config struct {
	// Port is the gRPC listen port
	Port int `env:"RPG_SHEET_PORT" envDefault:"50051"`

	// Store selects the character store backend: redis or sqlite
	Store      string `env:"RPG_SHEET_STORE" envDefault:"redis"`
	RedisURL   string `env:"RPG_SHEET_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	SQLitePath string `env:"RPG_SHEET_SQLITE_PATH" envDefault:"rpg-sheet.db"`

	// RulesPath replaces the built-in skill table when set
	RulesPath string `env:"RPG_SHEET_RULES_PATH"`

	WikiBaseURL  string        `env:"RPG_SHEET_WIKI_BASE_URL" envDefault:"http://dnd2024.wikidot.com"`
	WikiTimeout  time.Duration `env:"RPG_SHEET_WIKI_TIMEOUT" envDefault:"5s"`
	WikiCacheTTL time.Duration `env:"RPG_SHEET_WIKI_CACHE_TTL" envDefault:"24h"`

	SRDBaseURL  string        `env:"RPG_SHEET_SRD_BASE_URL" envDefault:"https://www.dnd5eapi.co/api/2014/"`
	SRDCacheTTL time.Duration `env:"RPG_SHEET_SRD_CACHE_TTL" envDefault:"24h"`

	RollLogTTL        time.Duration `env:"RPG_SHEET_ROLL_LOG_TTL" envDefault:"24h"`
	RollLogMaxEntries int           `env:"RPG_SHEET_ROLL_LOG_MAX" envDefault:"50"`

	LogLevel string `env:"RPG_SHEET_LOG_LEVEL" envDefault:"info"`
}

// Load parses the process environment
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and the settings the chosen store needs
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("RPG_SHEET_PORT", c.Port, 1, 65535, vb)
	errors.ValidateEnum("RPG_SHEET_STORE", c.Store, []string{StoreRedis, StoreSQLite}, vb)
	if c.Store == StoreSQLite {
		errors.ValidateRequired("RPG_SHEET_SQLITE_PATH", c.SQLitePath, vb)
	}
	// Redis also backs the roll log and link cache, so it is needed for both stores
	errors.ValidateRequired("RPG_SHEET_REDIS_URL", c.RedisURL, vb)
	errors.ValidateRequired("RPG_SHEET_WIKI_BASE_URL", c.WikiBaseURL, vb)
	errors.ValidateRequired("RPG_SHEET_SRD_BASE_URL", c.SRDBaseURL, vb)

	if c.WikiTimeout <= 0 {
		vb.Field("RPG_SHEET_WIKI_TIMEOUT", "must be positive")
	}
	if c.WikiCacheTTL < 0 {
		vb.Field("RPG_SHEET_WIKI_CACHE_TTL", "cannot be negative")
	}
	if c.SRDCacheTTL < 0 {
		vb.Field("RPG_SHEET_SRD_CACHE_TTL", "cannot be negative")
	}
	if c.RollLogTTL < 0 {
		vb.Field("RPG_SHEET_ROLL_LOG_TTL", "cannot be negative")
	}
	if c.RollLogMaxEntries < 1 {
		vb.Field("RPG_SHEET_ROLL_LOG_MAX", "must be at least 1")
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.Fieldf("RPG_SHEET_LOG_LEVEL", "unknown level %q", c.LogLevel)
	}

	return vb.Build()
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
