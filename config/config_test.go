package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"CORS_ALLOWED_ORIGINS", "ADJUSTMENT_SWEEP_SCHEDULE", "ADJUSTMENT_SWEEP_GRACE", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=fairway sslmode=disable TimeZone=UTC", cfg.DatabaseURL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "0 */15 * * * *", cfg.SweepSchedule)
	assert.Equal(t, time.Minute, cfg.SweepGracePeriod)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://fairway@db/fairway")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("ADJUSTMENT_SWEEP_GRACE", "5m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres://fairway@db/fairway", cfg.DatabaseURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 5*time.Minute, cfg.SweepGracePeriod)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_PORT", "abc")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_PORT", "")
	t.Setenv("ADJUSTMENT_SWEEP_GRACE", "soon")
	_, err = Load()
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })

	SetupLogger(&Config{LogLevel: "debug", LogFormat: "json"})
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	SetupLogger(&Config{LogLevel: "loud"})
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
