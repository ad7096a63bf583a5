package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/renato0307/beeper/internal/domain"
)

// SourceList supports `beep.mp3` or `[beep.ogg, beep.mp3]` in YAML
type SourceList []string

// UnmarshalYAML implements custom unmarshaling for SourceList
func (sl *SourceList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var arr []string
		if err := value.Decode(&arr); err != nil {
			return err
		}
		*sl = arr
		return nil
	case yaml.ScalarNode:
		var str string
		if err := value.Decode(&str); err != nil {
			return err
		}
		if str != "" {
			*sl = []string{str}
		}
		return nil
	default:
		return fmt.Errorf("line %d: sources must be a string or a list of strings", value.Line)
	}
}

// SoundsFile is the structure of ~/.beeper/sounds.yaml
type SoundsFile struct {
	Sounds map[string]SourceList `yaml:"sounds"`
}

// Table converts the file into a sound table sorted by name
func (f SoundsFile) Table() domain.SoundTable {
	names := make([]string, 0, len(f.Sounds))
	for name := range f.Sounds {
		names = append(names, name)
	}
	sort.Strings(names)

	table := make(domain.SoundTable, 0, len(names))
	for _, name := range names {
		table = append(table, domain.SoundDefinition{
			Name:    name,
			Sources: []string(f.Sounds[name]),
		})
	}
	return table
}

// LoadSoundTable reads a sounds.yaml file.
// Returns an empty table if the file doesn't exist (not an error).
func LoadSoundTable(path string) (domain.SoundTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.SoundTable{}, nil
		}
		return nil, fmt.Errorf("failed to read sounds file: %w", err)
	}

	var file SoundsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid sounds.yaml: %w", err)
	}

	table := file.Table()
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sounds.yaml: %w", err)
	}
	return table, nil
}

// ResolveSoundTable returns the preset table with the user table merged over it
func ResolveSoundTable(preset string, user domain.SoundTable) (domain.SoundTable, error) {
	if preset == "" {
		preset = domain.DefaultPreset
	}
	base, err := domain.LookupPreset(preset)
	if err != nil {
		return nil, err
	}

	table := base.Merge(user)
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}
