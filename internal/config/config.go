package config

import (
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Batch    BatchConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds the optional evaluation-history database settings.
// History falls back to an in-memory store when URL is empty.
type DatabaseConfig struct {
	URL string
}

// BatchConfig holds batch evaluation settings
type BatchConfig struct {
	MaxConcurrent int64
	MaxTests      int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Batch: BatchConfig{
			MaxConcurrent: getEnvInt64("BATCH_MAX_CONCURRENT", 8),
			MaxTests:      int(getEnvInt64("BATCH_MAX_TESTS", 1000)),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
