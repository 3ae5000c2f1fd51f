package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imRanDan/chess-analytics-tool/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:          ":8080",
		DBPath:        "test.db",
		LogLevel:      "INFO",
		SyncWorkers:   2,
		SyncQueueSize: 32,
		ArchiveLimit:  3,
		MaxConcurrent: 4,
		LichessMax:    100,
		TrendWindow:   10,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_NonPositiveWorkers(t *testing.T) {
	cfg := validConfig()
	cfg.SyncWorkers = 0

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SYNC_WORKER_COUNT must be positive")
}

func TestValidate_NegativeTrendWindow(t *testing.T) {
	cfg := validConfig()
	cfg.TrendWindow = -1

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "TREND_WINDOW cannot be negative")
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"ADDR", "DB_PATH", "LOG_LEVEL", "SYNC_WORKER_COUNT", "SYNC_QUEUE_SIZE",
		"ARCHIVE_LIMIT", "MAX_CONCURRENT_ARCHIVE", "LICHESS_MAX_GAMES", "TREND_WINDOW",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 2, cfg.SyncWorkers)
	assert.Equal(t, 10, cfg.TrendWindow)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("SYNC_WORKER_COUNT", "8")
	t.Setenv("TREND_WINDOW", "25")

	cfg := config.Load()

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 8, cfg.SyncWorkers)
	assert.Equal(t, 25, cfg.TrendWindow)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("SYNC_WORKER_COUNT", "not-a-number")

	cfg := config.Load()
	assert.Equal(t, 2, cfg.SyncWorkers)
}
