package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	DBPath        string
	LogLevel      string
	SyncWorkers   int
	SyncQueueSize int
	ArchiveLimit  int
	MaxConcurrent int
	LichessMax    int
	TrendWindow   int
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:          envOr("ADDR", ":8080"),
		DBPath:        envOr("DB_PATH", "file:chessanalytics.db"),
		LogLevel:      envOr("LOG_LEVEL", "INFO"),
		SyncWorkers:   envIntOr("SYNC_WORKER_COUNT", 2),
		SyncQueueSize: envIntOr("SYNC_QUEUE_SIZE", 32),
		ArchiveLimit:  envIntOr("ARCHIVE_LIMIT", 3),
		MaxConcurrent: envIntOr("MAX_CONCURRENT_ARCHIVE", 4),
		LichessMax:    envIntOr("LICHESS_MAX_GAMES", 100),
		TrendWindow:   envIntOr("TREND_WINDOW", 10),
	}
}

// Validate checks the configuration for values the server cannot run with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.SyncWorkers <= 0 {
		return fmt.Errorf("SYNC_WORKER_COUNT must be positive")
	}
	if c.SyncQueueSize <= 0 {
		return fmt.Errorf("SYNC_QUEUE_SIZE must be positive")
	}
	if c.MaxConcurrent <= 0 {
		return fmt.Errorf("MAX_CONCURRENT_ARCHIVE must be positive")
	}
	if c.TrendWindow < 0 {
		return fmt.Errorf("TREND_WINDOW cannot be negative")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
