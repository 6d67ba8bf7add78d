package config

import (
	"testing"
	"time"

	"spacexdash/internal"
	"spacexdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "SHUTDOWN_TIMEOUT", "DATA_FILE", "LOG_LEVEL", "PPROF_PORT", "PPROF_ENABLED"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8050", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultDataFile, cfg.Data.File)
	assert.Equal(t, internal.LogLevelInfo, cfg.Log.Level)
	assert.False(t, cfg.Profiling.Enabled)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("DATA_FILE", "/tmp/launches.xlsx")
	t.Setenv("LOG_LEVEL", "TRACE")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_PORT", "6061")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/tmp/launches.xlsx", cfg.Data.File)
	assert.Equal(t, internal.LogLevelTrace, cfg.Log.Level)
	assert.True(t, cfg.Profiling.Enabled)
	assert.Equal(t, "6061", cfg.Profiling.Port)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"non-numeric port", map[string]string{"PORT": "http"}},
		{"port out of range", map[string]string{"PORT": "70000"}},
		{"unknown gin mode", map[string]string{"GIN_MODE": "verbose"}},
		{"pprof port clash", map[string]string{"PPROF_ENABLED": "true", "PPROF_PORT": "8050"}},
		{"negative shutdown", map[string]string{"SHUTDOWN_TIMEOUT": "-1s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}
