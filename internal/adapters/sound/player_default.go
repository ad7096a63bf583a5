//go:build !darwin && !linux && !windows

package sound

// playerCommands has no player on unsupported platforms; playback falls back to the terminal bell
func playerCommands(path string) []playerCommand {
	return nil
}
