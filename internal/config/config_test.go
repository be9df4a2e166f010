package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, StorageMySQL, cfg.Storage)
	assert.Equal(t, 10*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "your-secret-key", cfg.JWTSecret)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, LogFormatJSON, cfg.Log.Format)
	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE", "memory")
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRES", "90s")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 90*time.Second, cfg.TokenTTL)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, LogFormatText, cfg.Log.Format)
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "zero ttl", key: "JWT_ACCESS_TOKEN_EXPIRES", value: "0s"},
		{name: "negative ttl", key: "JWT_ACCESS_TOKEN_EXPIRES", value: "-1m"},
		{name: "bad duration", key: "JWT_ACCESS_TOKEN_EXPIRES", value: "ten minutes"},
		{name: "unknown storage", key: "STORAGE", value: "postgres"},
		{name: "unknown log format", key: "LOG_FORMAT", value: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
