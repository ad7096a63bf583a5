package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults shared by the CLI flags and the settings file
const (
	DefaultBackend = "speaker"
	DefaultSSHHost = "localhost"
	DefaultSSHPort = 2323
)

// Backends lists the supported audio backends
var Backends = []string{"speaker", "command", "bell"}

// Settings represents the structure of ~/.beeper/settings.json
type Settings struct {
	AssetsDir   string `json:"assets_dir,omitempty"`
	Backend     string `json:"backend,omitempty"`
	Debug       *bool  `json:"debug,omitempty"`
	History     *bool  `json:"history,omitempty"`
	MaxLogFiles *int   `json:"max_log_files,omitempty"`
	Preset      string `json:"preset,omitempty"`
	SSHHost     string `json:"ssh_host,omitempty"`
	SSHPort     *int   `json:"ssh_port,omitempty"`
}

// HistoryEnabled reports whether play events should be recorded (default true)
func (s *Settings) HistoryEnabled() bool {
	return s == nil || s.History == nil || *s.History
}

// LoadSettings loads settings from $BEEPER_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.AssetsDir != "" {
		settings.AssetsDir = ExpandPath(settings.AssetsDir)
	}

	return &settings, nil
}

// SaveSettings saves settings to $BEEPER_HOME/settings.json
func SaveSettings(settings *Settings) error {
	return SaveSettingsTo(GetSettingsPath(), settings)
}

// SaveSettingsTo saves settings to an explicit path, creating its directory
func SaveSettingsTo(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
