package domain

import (
	"fmt"
	"slices"
	"strings"
)

// SoundDefinition binds a logical sound name to its candidate source files.
// Sources are tried in order and the first playable one wins.
type SoundDefinition struct {
	Name    string
	Sources []string
}

// Validate checks that the definition has a name and at least one non-empty source
func (d SoundDefinition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptySoundName
	}
	if len(d.Sources) == 0 {
		return fmt.Errorf("%w: %s", ErrNoSources, d.Name)
	}
	for _, src := range d.Sources {
		if strings.TrimSpace(src) == "" {
			return fmt.Errorf("%w: %s has an empty source", ErrNoSources, d.Name)
		}
	}
	return nil
}

// SoundTable is the static name -> sources configuration the registry is built from
type SoundTable []SoundDefinition

// Validate checks every definition and rejects duplicate names
func (t SoundTable) Validate() error {
	seen := make(map[string]bool, len(t))
	for _, def := range t {
		if err := def.Validate(); err != nil {
			return err
		}
		if seen[def.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateSound, def.Name)
		}
		seen[def.Name] = true
	}
	return nil
}

// Names returns the sound names in table order
func (t SoundTable) Names() []string {
	names := make([]string, len(t))
	for i, def := range t {
		names[i] = def.Name
	}
	return names
}

// Lookup returns the definition registered under name
func (t SoundTable) Lookup(name string) (SoundDefinition, bool) {
	for _, def := range t {
		if def.Name == name {
			return def, true
		}
	}
	return SoundDefinition{}, false
}

// Merge returns a new table where overrides replace entries with the same name
// and new names are appended in override order. Neither input is modified.
func (t SoundTable) Merge(overrides SoundTable) SoundTable {
	merged := make(SoundTable, 0, len(t)+len(overrides))
	index := make(map[string]int, len(t)+len(overrides))

	for _, def := range t {
		index[def.Name] = len(merged)
		merged = append(merged, def.clone())
	}
	for _, def := range overrides {
		if i, ok := index[def.Name]; ok {
			merged[i] = def.clone()
			continue
		}
		index[def.Name] = len(merged)
		merged = append(merged, def.clone())
	}

	return merged
}

func (d SoundDefinition) clone() SoundDefinition {
	return SoundDefinition{Name: d.Name, Sources: slices.Clone(d.Sources)}
}
