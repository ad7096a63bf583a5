package config

import (
	"os"
	"path/filepath"
)

// GetHome returns BEEPER_HOME or the ~/.beeper default
func GetHome() string {
	home := os.Getenv("BEEPER_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".beeper"
		}
		return filepath.Join(homeDir, ".beeper")
	}
	return ExpandPath(home)
}

// GetDBPath returns $BEEPER_HOME/history.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "history.db")
}

// GetSettingsPath returns $BEEPER_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetSoundsPath returns $BEEPER_HOME/sounds.yaml
func GetSoundsPath() string {
	return filepath.Join(GetHome(), "sounds.yaml")
}

// GetAssetsDir returns $BEEPER_HOME/sounds, where relative sources are resolved by default
func GetAssetsDir() string {
	return filepath.Join(GetHome(), "sounds")
}

// GetSSHDir returns $BEEPER_HOME/ssh, where the server host key lives
func GetSSHDir() string {
	return filepath.Join(GetHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
