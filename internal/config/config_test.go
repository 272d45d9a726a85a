package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.Port)
	assert.Equal(t, config.StoreRedis, cfg.Store)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "http://dnd2024.wikidot.com", cfg.WikiBaseURL)
	assert.Equal(t, 5*time.Second, cfg.WikiTimeout)
	assert.Equal(t, 24*time.Hour, cfg.RollLogTTL)
	assert.Equal(t, 50, cfg.RollLogMaxEntries)
	assert.Empty(t, cfg.RulesPath)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadFromOverrides(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"RPG_SHEET_PORT":         "6000",
		"RPG_SHEET_STORE":        "sqlite",
		"RPG_SHEET_SQLITE_PATH":  "/tmp/sheets.db",
		"RPG_SHEET_WIKI_TIMEOUT": "2s",
		"RPG_SHEET_ROLL_LOG_MAX": "10",
		"RPG_SHEET_LOG_LEVEL":    "DEBUG",
		"RPG_SHEET_RULES_PATH":   "skills.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Port)
	assert.Equal(t, config.StoreSQLite, cfg.Store)
	assert.Equal(t, "/tmp/sheets.db", cfg.SQLitePath)
	assert.Equal(t, 2*time.Second, cfg.WikiTimeout)
	assert.Equal(t, 10, cfg.RollLogMaxEntries)
	assert.Equal(t, "skills.yaml", cfg.RulesPath)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadFromRejectsBadValues(t *testing.T) {
	testCases := []struct {
		name    string
		environ map[string]string
		field   string
	}{
		{name: "unknown store", environ: map[string]string{"RPG_SHEET_STORE": "postgres"}, field: "RPG_SHEET_STORE"},
		{name: "port out of range", environ: map[string]string{"RPG_SHEET_PORT": "70000"}, field: "RPG_SHEET_PORT"},
		{name: "empty roll log", environ: map[string]string{"RPG_SHEET_ROLL_LOG_MAX": "0"}, field: "RPG_SHEET_ROLL_LOG_MAX"},
		{name: "unknown log level", environ: map[string]string{"RPG_SHEET_LOG_LEVEL": "loud"}, field: "RPG_SHEET_LOG_LEVEL"},
		{name: "zero wiki timeout", environ: map[string]string{"RPG_SHEET_WIKI_TIMEOUT": "0s"}, field: "RPG_SHEET_WIKI_TIMEOUT"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.LoadFrom(tc.environ)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestLoadFromUnparsable(t *testing.T) {
	_, err := config.LoadFrom(map[string]string{"RPG_SHEET_PORT": "fifty"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
