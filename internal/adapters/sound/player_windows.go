//go:build windows

package sound

import (
	"fmt"
	"path/filepath"
	"strings"
)

// playerCommands plays sounds on Windows using PowerShell
func playerCommands(path string) []playerCommand {
	quoted := strings.ReplaceAll(path, "'", "''")

	var script string
	if strings.ToLower(filepath.Ext(path)) == ".wav" {
		script = fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", quoted)
	} else {
		// MediaPlayer needs the process alive until playback ends
		script = fmt.Sprintf(
			"Add-Type -AssemblyName presentationCore; "+
				"$p = New-Object System.Windows.Media.MediaPlayer; "+
				"$p.Open([uri]'%s'); $p.Play(); "+
				"while (-not $p.NaturalDuration.HasTimeSpan) { Start-Sleep -Milliseconds 50 }; "+
				"Start-Sleep -Milliseconds $p.NaturalDuration.TimeSpan.TotalMilliseconds",
			quoted)
	}

	return []playerCommand{
		{name: "powershell", args: []string{"-NoProfile", "-c", script}},
	}
}
