package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.UpdateConfig.Enabled)
	assert.True(t, cfg.UpdateConfig.AutoCheck)
	assert.Empty(t, cfg.StateFile)
	assert.Empty(t, cfg.JenvRoot)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	cfg.StateFile = "/tmp/custom-state"
	cfg.JenvRoot = "/opt/jenv"
	cfg.UpdateConfig.AutoCheck = false
	cfg.UpdateConfig.LastCheck = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom-state", loaded.StateFile)
	assert.Equal(t, "/opt/jenv", loaded.JenvRoot)
	assert.False(t, loaded.UpdateConfig.AutoCheck)
	assert.True(t, loaded.UpdateConfig.LastCheck.Equal(cfg.UpdateConfig.LastCheck))
}

func TestLoadStripsUTF8BOM(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	configDir := filepath.Join(configHome, "jdkpulse")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"jenv_root":"/opt/jenv","update_config":{"enabled":false}}`)...)
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.json"), data, 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/opt/jenv", cfg.JenvRoot)
	assert.False(t, cfg.UpdateConfig.Enabled)
}
