package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DatabasePath         string
	KeywordsPath         string
	PriceChartingToken   string
	SourceTimeout        time.Duration
	HistoryRetentionDays int
	LogLevel             string
	Port                 int
	DevMode              bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:                 getEnvAsInt("PORT", 8090),
		DevMode:              getEnvAsBool("DEV_MODE", false),
		DatabasePath:         getEnv("DATABASE_PATH", "./data/cardpricer.db"),
		KeywordsPath:         getEnv("KEYWORDS_PATH", ""),
		PriceChartingToken:   getEnv("PRICECHARTING_TOKEN", ""),
		SourceTimeout:        time.Duration(getEnvAsInt("SOURCE_TIMEOUT_SECONDS", 20)) * time.Second,
		HistoryRetentionDays: getEnvAsInt("HISTORY_RETENTION_DAYS", 90),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.SourceTimeout <= 0 {
		return fmt.Errorf("SOURCE_TIMEOUT_SECONDS must be positive")
	}

	// Note: PRICECHARTING_TOKEN is optional; without it the catalog
	// fallback source is disabled and only live listings are tried.

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
