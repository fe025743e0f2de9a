package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DASHBOARD_BACKEND_URL", "")
	t.Setenv("DASHBOARD_REQUEST_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Teacher Dashboard", cfg.AppName)
	require.Equal(t, ":8090", cfg.HTTPAddress())
	require.Equal(t, "http://localhost:5000", cfg.BackendURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.True(t, cfg.MetricsEnabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DASHBOARD_APP_PORT", ":9000")
	t.Setenv("DASHBOARD_BACKEND_URL", "http://quiz.internal:5000/")
	t.Setenv("DASHBOARD_REQUEST_TIMEOUT", "2s")
	t.Setenv("DASHBOARD_LOG_LEVEL", "DEBUG")
	t.Setenv("DASHBOARD_METRICS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.HTTPAddress())
	require.Equal(t, "http://quiz.internal:5000", cfg.BackendURL)
	require.Equal(t, 2*time.Second, cfg.RequestTimeout)
	require.Equal(t, "debug", cfg.LogLevel)
	require.False(t, cfg.MetricsEnabled)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("DASHBOARD_REQUEST_TIMEOUT", "soon")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("DASHBOARD_REQUEST_TIMEOUT", "5s")
	t.Setenv("DASHBOARD_BACKEND_URL", "not a url")
	_, err = Load()
	require.Error(t, err)
}
