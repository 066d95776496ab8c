package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the runtime configuration read from the environment.
type Config struct {
	Port               string
	DatabaseURL        string
	CORSAllowedOrigins []string
	SweepSchedule      string
	SweepGracePeriod   time.Duration
	LogLevel           string
	LogFormat          string
	GinMode            string
}

// Load reads the configuration. DATABASE_URL wins over the DB_* variables.
func Load() (*Config, error) {
	grace, err := time.ParseDuration(getEnv("ADJUSTMENT_SWEEP_GRACE", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid ADJUSTMENT_SWEEP_GRACE: %w", err)
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		SweepSchedule:      getEnv("ADJUSTMENT_SWEEP_SCHEDULE", "0 */15 * * * *"),
		SweepGracePeriod:   grace,
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		GinMode:            getEnv("GIN_MODE", "debug"),
	}

	if cfg.DatabaseURL == "" {
		port, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
		if err != nil {
			return nil, fmt.Errorf("invalid DB_PORT: %w", err)
		}
		cfg.DatabaseURL = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			getEnv("DB_HOST", "localhost"),
			port,
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", "postgres"),
			getEnv("DB_NAME", "fairway"),
			getEnv("DB_SSLMODE", "disable"),
		)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
