package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/beeper/internal/config"
	"github.com/renato0307/beeper/internal/domain"
)

func TestSetupValuesFrom_Defaults(t *testing.T) {
	values := SetupValuesFrom(&config.Settings{})

	assert.Equal(t, SetupValues{
		Backend: config.DefaultBackend,
		History: true,
		Preset:  domain.DefaultPreset,
	}, values)
}

func TestSetupValuesFrom_NilSettings(t *testing.T) {
	values := SetupValuesFrom(nil)

	assert.Equal(t, domain.DefaultPreset, values.Preset)
	assert.True(t, values.History)
}

func TestSetupValues_ApplyKeepsUnrelatedFields(t *testing.T) {
	port := 2424
	disabled := false
	settings := &config.Settings{
		History: &disabled,
		Preset:  "beep2",
		SSHPort: &port,
	}

	values := SetupValuesFrom(settings)
	assert.Equal(t, "beep2", values.Preset)
	assert.False(t, values.History)

	values.Preset = "lower"
	values.History = true
	values.Apply(settings)

	assert.Equal(t, "lower", settings.Preset)
	assert.True(t, settings.HistoryEnabled())
	require.NotNil(t, settings.SSHPort)
	assert.Equal(t, 2424, *settings.SSHPort)
}

func TestValidateAssetsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "beep.mp3")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.NoError(t, validateAssetsDir(""))
	assert.NoError(t, validateAssetsDir(dir))
	assert.Error(t, validateAssetsDir(file))
	assert.Error(t, validateAssetsDir(filepath.Join(dir, "missing")))
}

func TestNewSetupForm(t *testing.T) {
	values := SetupValuesFrom(&config.Settings{})
	assert.NotNil(t, NewSetupForm(&values))
}
