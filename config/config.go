// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultDatabaseURL is a SQLite file in the working directory.
const DefaultDatabaseURL = "takehome.db"

type Config struct {
	Addr             string
	DatabaseURL      string
	HistoryEnabled   bool
	HistoryRetention time.Duration
	PruneInterval    time.Duration
	AllowedOrigins   []string
}

func Load() Config {
	return Config{
		Addr:             getEnv("TAKEHOME_ADDR", ":8080"),
		DatabaseURL:      getEnv("TAKEHOME_DATABASE_URL", DefaultDatabaseURL),
		HistoryEnabled:   getEnvBool("TAKEHOME_HISTORY_ENABLED", true),
		HistoryRetention: getEnvDuration("TAKEHOME_HISTORY_RETENTION", 30*24*time.Hour),
		PruneInterval:    getEnvDuration("TAKEHOME_PRUNE_INTERVAL", time.Hour),
		AllowedOrigins:   getEnvList("TAKEHOME_ALLOWED_ORIGINS", nil),
	}
}

// IsPostgres reports whether DatabaseURL selects the Postgres store.
func (c Config) IsPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") ||
		strings.HasPrefix(c.DatabaseURL, "postgresql://")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("TAKEHOME_ADDR must not be empty")
	}
	if c.HistoryEnabled {
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("TAKEHOME_DATABASE_URL is required when history is enabled")
		}
		if c.HistoryRetention <= 0 {
			return fmt.Errorf("TAKEHOME_HISTORY_RETENTION must be positive")
		}
		if c.PruneInterval <= 0 {
			return fmt.Errorf("TAKEHOME_PRUNE_INTERVAL must be positive")
		}
	}
	for _, origin := range c.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("TAKEHOME_ALLOWED_ORIGINS entry %q must be an http(s) origin or *", origin)
		}
	}
	return nil
}
