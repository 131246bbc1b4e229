package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.Limiter.MaxRequests)
	assert.Equal(t, time.Minute, cfg.Limiter.Window)
	assert.Equal(t, 50*time.Millisecond, cfg.Limiter.MinBackoff)
	assert.Equal(t, 500, cfg.Reader.PageSize)
	assert.Equal(t, uint64(3), cfg.Reader.MaxRetries)
	assert.Equal(t, []string{"admin", "editor"}, cfg.Access.FullAccessRoles)
	assert.Empty(t, cfg.Access.ReadOnlyUsers)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.Log.HandlerOptions().Level)
	assert.False(t, cfg.Log.AddSource)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s")
	t.Setenv("LIMITER_MAX_REQUESTS", "10")
	t.Setenv("LIMITER_WINDOW", "5s")
	t.Setenv("ACCESS_READONLY_USERS", "auditor@example.com,u-42")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Limiter.MaxRequests)
	assert.Equal(t, 5*time.Second, cfg.Limiter.Window)
	assert.Equal(t, []string{"auditor@example.com", "u-42"}, cfg.Access.ReadOnlyUsers)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, slog.LevelWarn, cfg.Log.SlogLevel())
}

func TestLoadRequiresSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	_, err := Load()
	require.Error(t, err)
}
