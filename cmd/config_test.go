package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Address())
	assert.Equal(t, 30*time.Minute, cfg.Dispatch.GracePeriod)
	assert.Equal(t, 15*time.Minute, cfg.Dispatch.DwellTime)
	assert.InDelta(t, 30.0, cfg.Dispatch.AverageSpeedKmh, 1e-9)
	assert.Equal(t, "log", cfg.Notification.Provider)
	assert.True(t, cfg.Jobs.GeocodeRetry.Enabled)
	assert.False(t, cfg.Jobs.AutoDispatch.Enabled)

	best := cfg.Dispatch.BestScoring()
	assert.InDelta(t, 2.0, best.WorkloadPenaltyKm, 1e-9)
	assert.Equal(t, 10, best.MaxDailyTasks)
	assert.InDelta(t, 10.0, best.DefaultAnchorKm, 1e-9)

	nearest := cfg.Dispatch.NearestScoring()
	assert.Zero(t, nearest.WorkloadPenaltyKm)
	assert.Zero(t, nearest.MaxDailyTasks)
}

func TestLoadConfig_FileAndEnvironment(t *testing.T) {
	path := writeConfig(t, `
http:
  port: 9090
db:
  host: db.internal
  sslMode: require
dispatch:
  maxDailyTasks: 8
  timezone: UTC
geocoding:
  countryCodes: de
`)
	t.Setenv("DISPATCH_DB_PASSWORD", "secret")
	t.Setenv("DISPATCH_DISPATCH_GRACE_PERIOD", "45m")
	t.Setenv("DISPATCH_GEOCODING_BASE_URL", "http://geo.local")
	t.Setenv("DISPATCH_JOBS_AUTO_DISPATCH_ENABLED", "true")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "secret", cfg.DB.Password)
	assert.Contains(t, cfg.DB.DSN(), "sslmode=require")
	assert.Equal(t, 8, cfg.Dispatch.MaxDailyTasks)
	assert.Equal(t, 45*time.Minute, cfg.Dispatch.GracePeriod)
	assert.Equal(t, "http://geo.local", cfg.Geocoding.BaseURL)
	assert.Equal(t, "de", cfg.Geocoding.Client().CountryCodes)
	assert.True(t, cfg.Jobs.AutoDispatch.Enabled)

	loc, err := cfg.Dispatch.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("explicit file must exist", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("unknown log level", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "log:\n  level: verbose\n"))
		assert.ErrorContains(t, err, "unknown log level")
	})

	t.Run("unknown timezone", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "dispatch:\n  timezone: Mars/Olympus\n"))
		assert.Error(t, err)
	})

	t.Run("non-positive speed", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "dispatch:\n  averageSpeedKmh: 0\n"))
		assert.ErrorContains(t, err, "averageSpeedKmh")
	})
}

func TestCanonicalizeEnvKey(t *testing.T) {
	known := map[string]any{
		"db": map[string]any{"sslMode": "disable", "host": "localhost"},
		"dispatch": map[string]any{
			"gracePeriod":       "30m",
			"workloadPenaltyKm": 2.0,
		},
		"jobs": map[string]any{
			"autoDispatch": map[string]any{"enabled": false},
		},
	}

	tests := []struct {
		raw  string
		want string
	}{
		{"DB_HOST", "db.host"},
		{"DB_SSL_MODE", "db.sslMode"},
		{"DISPATCH_GRACE_PERIOD", "dispatch.gracePeriod"},
		{"DISPATCH_WORKLOAD_PENALTY_KM", "dispatch.workloadPenaltyKm"},
		{"JOBS_AUTO_DISPATCH_ENABLED", "jobs.autoDispatch.enabled"},
		{"UNKNOWN_KEY", "unknown.key"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.raw, known))
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("json by default", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(LogConfig{Level: "warn"}, &buf)
		require.NoError(t, err)

		logger.Info("dropped")
		logger.Warn("kept", "component", "test")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "kept", entry["msg"])
		assert.Equal(t, "test", entry["component"])
	})

	t.Run("pretty text", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(LogConfig{Level: "debug", Pretty: true}, &buf)
		require.NoError(t, err)

		logger.Debug("hello", "driver", "d-1")
		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "driver=d-1")
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := NewLogger(LogConfig{Level: "loud"}, &bytes.Buffer{})
		assert.Error(t, err)
	})
}
