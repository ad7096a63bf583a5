package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/beeper/internal/config"
	"github.com/renato0307/beeper/internal/logging"
	"github.com/renato0307/beeper/internal/ui"
)

// SetupCmd edits settings.json through an interactive form
type SetupCmd struct{}

// Run executes the setup command
func (s *SetupCmd) Run(cli *CLI) error {
	settings := cli.Settings()
	values := ui.SetupValuesFrom(settings)

	if err := ui.NewSetupForm(&values).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("Setup cancelled, settings unchanged.")
			return nil
		}
		return fmt.Errorf("setup form failed: %w", err)
	}

	values.Apply(settings)
	if err := config.SaveSettings(settings); err != nil {
		return err
	}

	logging.Logger.Info("Settings saved",
		"path", config.GetSettingsPath(),
		"preset", settings.Preset,
		"backend", settings.Backend)
	fmt.Printf("Settings saved to %s\n", config.GetSettingsPath())
	return nil
}
