//go:build linux

package sound

import (
	"path/filepath"
	"strings"
)

// playerCommands plays sounds on Linux using PulseAudio/PipeWire, falling back to
// format-specific players (mpg123 for mp3, aplay for wav)
func playerCommands(path string) []playerCommand {
	players := []playerCommand{
		{name: "paplay", args: []string{path}},
		{name: "pw-play", args: []string{path}},
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		players = append(players, playerCommand{name: "mpg123", args: []string{"-q", path}})
	case ".wav":
		players = append(players, playerCommand{name: "aplay", args: []string{"-q", path}})
	}

	return players
}
