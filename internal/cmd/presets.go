package cmd

import (
	"fmt"
	"strings"

	"github.com/renato0307/beeper/internal/domain"
)

// PresetsCmd lists the built-in presets and marks the active one
type PresetsCmd struct{}

// Run executes the presets command
func (p *PresetsCmd) Run(cli *CLI) error {
	for _, name := range domain.PresetNames() {
		table, err := domain.LookupPreset(name)
		if err != nil {
			return err
		}

		marker := " "
		if name == cli.Preset {
			marker = "*"
		}

		beep, _ := table.Lookup(domain.SoundBeep)
		fmt.Printf("%s %-8s %s\n", marker, name, strings.Join(beep.Sources, ", "))
	}
	return nil
}
