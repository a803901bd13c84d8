package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/rescue")
	t.Setenv("USER_ID", "u-42")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "u-42", cfg.UserName, "name falls back to id")
	assert.Equal(t, 3*time.Second, cfg.ProbeInterval)
	assert.Equal(t, 5*time.Second, cfg.ResubscribeDelay)
	assert.Equal(t, 256, cfg.MutationLedgerSize)
	assert.Equal(t, 3, cfg.WebhookMaxRetries)
	assert.Equal(t, "30-M", cfg.WriteRateLimit)
	assert.Empty(t, cfg.APIKeys)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db/rescue")
	t.Setenv("USER_ID", "u-1")
	t.Setenv("USER_NAME", "Вера")
	t.Setenv("PROBE_INTERVAL", "250ms")
	t.Setenv("RESUBSCRIBE_DELAY", "1s")
	t.Setenv("MIGRATE_ON_START", "true")
	t.Setenv("API_KEYS", "a, b ,c")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "Вера", cfg.UserName)
	assert.Equal(t, 250*time.Millisecond, cfg.ProbeInterval)
	assert.Equal(t, time.Second, cfg.ResubscribeDelay)
	assert.True(t, cfg.MigrateOnStart)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.APIKeys)
	assert.Equal(t, 0, cfg.RedisDB, "invalid values fall back to default")
}

func TestLoadConfig_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DATABASE_URL=postgres://file/rescue\nUSER_ID=from-file\n"), 0o600))
	// godotenv не перезаписывает уже заданные переменные
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")
	t.Setenv("USER_ID", "")
	os.Unsetenv("USER_ID")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://file/rescue", cfg.DatabaseURL)
	assert.Equal(t, "from-file", cfg.UserID)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"missing database", Config{UserID: "u", ProbeInterval: time.Second}, "DATABASE_URL"},
		{"missing user", Config{DatabaseURL: "postgres://x", ProbeInterval: time.Second}, "USER_ID"},
		{"zero probe interval", Config{DatabaseURL: "postgres://x", UserID: "u"}, "PROBE_INTERVAL"},
		{"ok", Config{DatabaseURL: "postgres://x", UserID: "u", ProbeInterval: time.Second}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
