package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("SALON_DB_PASSWORD", "s3cret")

	path := writeConfig(t, `
[database]
host = "localhost"
user = "salon"
password = "${SALON_DB_PASSWORD}"
dbname = "salon"

[redis]
enabled = true
address = "localhost:6379"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 30, cfg.Booking.DefaultStepMinutes)
	assert.Equal(t, "UTC", cfg.Booking.DefaultTimezone)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 10, cfg.Redis.LockTTLSeconds)
	assert.Equal(t,
		"host=localhost port=5432 user=salon password=s3cret dbname=salon sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing database host",
			content: "[database]\ndbname = \"salon\"\n",
		},
		{
			name:    "redis without address",
			content: "[database]\nhost = \"db\"\ndbname = \"salon\"\n[redis]\nenabled = true\n",
		},
		{
			name:    "step too small",
			content: "[database]\nhost = \"db\"\ndbname = \"salon\"\n[booking]\ndefault_step_minutes = 1\n",
		},
		{
			name:    "unknown timezone",
			content: "[database]\nhost = \"db\"\ndbname = \"salon\"\n[booking]\ndefault_timezone = \"Mars/Olympus\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
