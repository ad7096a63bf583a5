package domain

import (
	"fmt"
	"sort"
)

// SoundBeep is the logical name every preset binds
const SoundBeep = "beep"

// DefaultPreset is used when no preset is configured
const DefaultPreset = "default"

// Built-in presets. They differ only in the asset bound to "beep".
var presets = map[string]SoundTable{
	DefaultPreset: {{Name: SoundBeep, Sources: []string{"beep.mp3"}}},
	"beep2":       {{Name: SoundBeep, Sources: []string{"beep2.mp3"}}},
	"lower":       {{Name: SoundBeep, Sources: []string{"lower_beep2.mp3"}}},
}

// LookupPreset returns a copy of the named preset's sound table
func LookupPreset(name string) (SoundTable, error) {
	table, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return SoundTable(nil).Merge(table), nil
}

// PresetNames returns the built-in preset names, sorted
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
