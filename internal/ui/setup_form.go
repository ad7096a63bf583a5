package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/beeper/internal/config"
	"github.com/renato0307/beeper/internal/domain"
)

// SetupValues holds the answers of the setup form
type SetupValues struct {
	AssetsDir string
	Backend   string
	History   bool
	Preset    string
}

// SetupValuesFrom prefills the form from existing settings
func SetupValuesFrom(settings *config.Settings) SetupValues {
	values := SetupValues{
		Backend: config.DefaultBackend,
		History: settings.HistoryEnabled(),
		Preset:  domain.DefaultPreset,
	}
	if settings == nil {
		return values
	}

	values.AssetsDir = settings.AssetsDir
	if settings.Backend != "" {
		values.Backend = settings.Backend
	}
	if settings.Preset != "" {
		values.Preset = settings.Preset
	}
	return values
}

// Apply copies the answers into settings, leaving unrelated fields untouched
func (v SetupValues) Apply(settings *config.Settings) {
	history := v.History
	settings.AssetsDir = v.AssetsDir
	settings.Backend = v.Backend
	settings.History = &history
	settings.Preset = v.Preset
}

// NewSetupForm builds the interactive settings form bound to values
func NewSetupForm(values *SetupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Preset").
				Description("Which asset the beep sound uses").
				Options(huh.NewOptions(domain.PresetNames()...)...).
				Value(&values.Preset),
			huh.NewSelect[string]().
				Title("Audio backend").
				Options(huh.NewOptions(config.Backends...)...).
				Value(&values.Backend),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Assets directory").
				Description(fmt.Sprintf("Leave empty to use %s", config.GetAssetsDir())).
				Value(&values.AssetsDir).
				Validate(validateAssetsDir),
			huh.NewConfirm().
				Title("Record play history?").
				Value(&values.History),
		),
	)
}

// validateAssetsDir accepts an empty value or an existing directory
func validateAssetsDir(dir string) error {
	if dir == "" {
		return nil
	}
	info, err := os.Stat(config.ExpandPath(dir))
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}
