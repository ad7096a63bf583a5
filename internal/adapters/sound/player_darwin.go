//go:build darwin

package sound

// playerCommands plays sounds on macOS using afplay
func playerCommands(path string) []playerCommand {
	return []playerCommand{
		{name: "afplay", args: []string{path}},
	}
}
