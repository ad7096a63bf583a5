package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("BEEPER_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
	assert.True(t, settings.HistoryEnabled())
}

func TestSaveAndLoadSettings(t *testing.T) {
	home := t.TempDir()
	t.Setenv("BEEPER_HOME", filepath.Join(home, "nested"))

	history := false
	port := 2424
	require.NoError(t, SaveSettings(&Settings{
		Backend: "command",
		History: &history,
		Preset:  "lower",
		SSHPort: &port,
	}))

	settings, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "command", settings.Backend)
	assert.Equal(t, "lower", settings.Preset)
	assert.False(t, settings.HistoryEnabled())
	require.NotNil(t, settings.SSHPort)
	assert.Equal(t, 2424, *settings.SSHPort)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("BEEPER_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{nope"), 0644))

	_, err := LoadSettings()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.json")
}

func TestLoadSettings_ExpandsAssetsDir(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"assets_dir": "~/sounds"}`), 0644))

	settings, err := LoadSettingsFrom(path)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, "sounds"), settings.AssetsDir)
}

func TestPaths_FollowBeeperHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("BEEPER_HOME", home)

	assert.Equal(t, home, GetHome())
	assert.Equal(t, filepath.Join(home, "history.db"), GetDBPath())
	assert.Equal(t, filepath.Join(home, "settings.json"), GetSettingsPath())
	assert.Equal(t, filepath.Join(home, "sounds.yaml"), GetSoundsPath())
	assert.Equal(t, filepath.Join(home, "sounds"), GetAssetsDir())
	assert.Equal(t, filepath.Join(home, "ssh"), GetSSHDir())
}
