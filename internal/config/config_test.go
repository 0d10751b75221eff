package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STARBUCK_DATA_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8001, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 20, cfg.SnapshotKeep)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STARBUCK_DATA_DIR", t.TempDir())
	t.Setenv("STARBUCK_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("STARBUCK_SEED", "12345")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.DevMode)
	assert.Equal(t, int64(12345), cfg.Seed)
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := &Config{Port: -1, SnapshotKeep: 5}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: 8001, SnapshotKeep: 0}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: 8001, SnapshotKeep: 5}
	assert.NoError(t, cfg.Validate())
}
