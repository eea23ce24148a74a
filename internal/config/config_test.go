package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresBackendURL(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://backend.local")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "sufyanessence-admin", cfg.App.Name)
	require.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	require.Equal(t, "file", cfg.Session.StoreDriver)
	require.Equal(t, time.Minute, cfg.Session.StatsRefreshInterval())
	require.Equal(t, 15*time.Second, cfg.Backend.Timeout())
	require.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://backend.local")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SESSION_STORE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")
	t.Setenv("DASHBOARD_REFRESH_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.App.Port)
	require.Equal(t, "redis", cfg.Session.StoreDriver)
	require.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
	require.Equal(t, 5*time.Second, cfg.Session.StatsRefreshInterval())
}

func TestLoadRejectsInvalidRedisDB(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://backend.local")
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}
