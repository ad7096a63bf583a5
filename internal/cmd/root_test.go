package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/beeper/internal/config"
	"github.com/renato0307/beeper/internal/domain"
	"github.com/renato0307/beeper/internal/logging"
)

func ptr[T any](v T) *T { return &v }

// defaultCLI mirrors the values kong assigns when no flag is given
func defaultCLI() *CLI {
	return &CLI{
		Backend:     config.DefaultBackend,
		MaxLogFiles: logging.DefaultMaxLogFiles,
		Preset:      domain.DefaultPreset,
	}
}

func clearBeeperEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BEEPER_HOME", t.TempDir())
	for _, key := range []string{
		"BEEPER_BACKEND",
		"BEEPER_DEBUG",
		"BEEPER_MAX_LOG_FILES",
		"BEEPER_NO_HISTORY",
		"BEEPER_PRESET",
	} {
		unsetEnv(t, key)
	}
}

func TestApplySettings_SettingsFillDefaults(t *testing.T) {
	clearBeeperEnv(t)
	cli := defaultCLI()
	cli.SetSettings(&config.Settings{
		AssetsDir:   "/srv/sounds",
		Backend:     "bell",
		Debug:       ptr(true),
		History:     ptr(false),
		MaxLogFiles: ptr(5),
		Preset:      "lower",
	})

	cli.applySettings()

	assert.Equal(t, "/srv/sounds", cli.AssetsDir)
	assert.Equal(t, "bell", cli.Backend)
	assert.True(t, cli.Debug)
	assert.True(t, cli.NoHistory)
	assert.Equal(t, 5, cli.MaxLogFiles)
	assert.Equal(t, "lower", cli.Preset)
}

func TestApplySettings_FlagsWin(t *testing.T) {
	clearBeeperEnv(t)
	cli := defaultCLI()
	cli.AssetsDir = "/flag/sounds"
	cli.Backend = "command"
	cli.Preset = "beep2"
	cli.SetSettings(&config.Settings{
		AssetsDir: "/srv/sounds",
		Backend:   "bell",
		Preset:    "lower",
	})

	cli.applySettings()

	assert.Equal(t, "/flag/sounds", cli.AssetsDir)
	assert.Equal(t, "command", cli.Backend)
	assert.Equal(t, "beep2", cli.Preset)
}

func TestApplySettings_EnvWins(t *testing.T) {
	clearBeeperEnv(t)
	t.Setenv("BEEPER_PRESET", "default")
	t.Setenv("BEEPER_BACKEND", "speaker")
	cli := defaultCLI()
	cli.SetSettings(&config.Settings{Backend: "bell", Preset: "lower"})

	cli.applySettings()

	assert.Equal(t, "default", cli.Preset)
	assert.Equal(t, "speaker", cli.Backend)
}

func TestApplySettings_Defaults(t *testing.T) {
	clearBeeperEnv(t)
	cli := defaultCLI()

	cli.applySettings()

	assert.Equal(t, filepath.Join(config.GetHome(), "sounds"), cli.AssetsDir)
	assert.False(t, cli.NoHistory)
	assert.Equal(t, domain.DefaultPreset, cli.Preset)
}

func TestServeCmd_ApplySettings(t *testing.T) {
	clearBeeperEnv(t)
	unsetEnv(t, "BEEPER_SSH_HOST")
	unsetEnv(t, "BEEPER_SSH_PORT")

	serve := &ServeCmd{Host: config.DefaultSSHHost, Port: config.DefaultSSHPort}
	serve.applySettings(&config.Settings{SSHHost: "0.0.0.0", SSHPort: ptr(2424)})

	assert.Equal(t, "0.0.0.0", serve.Host)
	assert.Equal(t, 2424, serve.Port)
}
