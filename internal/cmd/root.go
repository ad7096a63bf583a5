package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/beeper/internal/config"
	"github.com/renato0307/beeper/internal/domain"
	"github.com/renato0307/beeper/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	AssetsDir   string           `help:"Directory where relative sound sources are resolved (default: $BEEPER_HOME/sounds)" env:"BEEPER_ASSETS_DIR"`
	Backend     string           `help:"Audio backend" default:"speaker" enum:"speaker,command,bell" env:"BEEPER_BACKEND"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	NoHistory   bool             `help:"Do not record play history" env:"BEEPER_NO_HISTORY"`
	Preset      string           `help:"Sound preset (default, beep2, lower)" default:"default" env:"BEEPER_PRESET"`

	Play    PlayCmd    `cmd:"play" help:"Play sounds by name"`
	List    ListCmd    `cmd:"list" help:"List the registered sounds"`
	Presets PresetsCmd `cmd:"presets" help:"List the built-in presets"`
	History HistoryCmd `cmd:"history" help:"Show recent plays and per-sound counts"`
	Board   BoardCmd   `cmd:"board" help:"Open the interactive sound board"`
	Serve   ServeCmd   `cmd:"serve" help:"Trigger sounds over SSH"`
	Setup   SetupCmd   `cmd:"setup" help:"Edit settings interactively"`
	Info    VersionCmd `cmd:"version" help:"Show version information"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// Settings returns the settings loaded at startup
func (c *CLI) Settings() *config.Settings {
	if c.settings == nil {
		c.settings = &config.Settings{}
	}
	return c.settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	c.applySettings()

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Share the log file with the gorm bridge, which reads BEEPER_DEBUG
	if c.Debug || c.DebugFile != "" {
		os.Setenv("BEEPER_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("BEEPER_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("BEEPER_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	logging.Logger.Debug("CLI configured",
		"assets_dir", c.AssetsDir,
		"backend", c.Backend,
		"history", !c.NoHistory,
		"preset", c.Preset)

	// Create container AFTER logging is initialized
	c.Container = NewContainer(ContainerConfig{
		AssetsDir: c.AssetsDir,
		Backend:   c.Backend,
		History:   !c.NoHistory,
		Preset:    c.Preset,
	})

	return nil
}

// applySettings fills options left at their defaults from settings.json.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) applySettings() {
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("BEEPER_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("BEEPER_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.Backend == config.DefaultBackend {
			if _, hasEnv := os.LookupEnv("BEEPER_BACKEND"); !hasEnv {
				if c.settings.Backend != "" {
					c.Backend = c.settings.Backend
				}
			}
		}

		if c.Preset == domain.DefaultPreset {
			if _, hasEnv := os.LookupEnv("BEEPER_PRESET"); !hasEnv {
				if c.settings.Preset != "" {
					c.Preset = c.settings.Preset
				}
			}
		}

		if c.AssetsDir == "" {
			c.AssetsDir = c.settings.AssetsDir
		}

		if !c.NoHistory {
			if _, hasEnv := os.LookupEnv("BEEPER_NO_HISTORY"); !hasEnv {
				c.NoHistory = !c.settings.HistoryEnabled()
			}
		}
	}

	if c.AssetsDir == "" {
		c.AssetsDir = config.GetAssetsDir()
	}
	c.AssetsDir = config.ExpandPath(c.AssetsDir)
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
