package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.BackendMemory, cfg.Store.Backend)
	assert.Equal(t, 6, cfg.App.CodeLength)
	assert.Equal(t, "random", cfg.App.CodeStrategy)
	assert.Equal(t, 365, cfg.App.DefaultExpirationDays)
	assert.Equal(t, 10, cfg.App.MaxAttempts)
	assert.Equal(t, time.Hour, cfg.App.CleanupInterval)
	assert.Equal(t, 2048, cfg.Validation.MaxURLLength)
	assert.True(t, cfg.Validation.AllowPrivateIPs)
	assert.False(t, cfg.Validation.RequireHost)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("CODE_LENGTH", "8")
	t.Setenv("DEFAULT_EXPIRATION_DAYS", "0")
	t.Setenv("TIME_ZONE", "UTC")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.BackendRedis, cfg.Store.Backend)
	assert.Equal(t, 8, cfg.App.CodeLength)
	assert.Equal(t, 0, cfg.App.DefaultExpirationDays)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)

	loc, err := cfg.App.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown backend", "STORE_BACKEND", "etcd"},
		{"code too long", "CODE_LENGTH", "11"},
		{"code too short", "CODE_LENGTH", "0"},
		{"unknown strategy", "CODE_STRATEGY", "uuid"},
		{"no attempts", "MAX_CREATE_ATTEMPTS", "0"},
		{"negative expiration", "DEFAULT_EXPIRATION_DAYS", "-1"},
		{"bad time zone", "TIME_ZONE", "Mars/Olympus"},
		{"url length above column size", "MAX_URL_LENGTH", "2049"},
		{"zero url length", "MAX_URL_LENGTH", "0"},
		{"not a number", "SERVER_PORT", "http"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "app",
		Password: "p@ss",
		DBName:   "links",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://app:p%40ss@db:5433/links?sslmode=disable", cfg.DSN())
}
