package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ListCmd lists the sounds of the active preset and sounds.yaml
type ListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type soundListEntry struct {
	Name    string   `json:"name"`
	Sources []string `json:"sources"`
}

// Run executes the list command
func (l *ListCmd) Run(cli *CLI) error {
	table, err := cli.Container.SoundTable()
	if err != nil {
		return err
	}

	names := table.Names()
	sort.Strings(names)

	entries := make([]soundListEntry, 0, len(table))
	for _, name := range names {
		def, _ := table.Lookup(name)
		entries = append(entries, soundListEntry{Name: def.Name, Sources: def.Sources})
	}

	if l.Format == "json" {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	width := len("NAME")
	for _, e := range entries {
		width = max(width, len(e.Name))
	}

	fmt.Printf("%-*s  %s\n", width, "NAME", "SOURCES")
	for _, e := range entries {
		fmt.Printf("%-*s  %s\n", width, e.Name, strings.Join(e.Sources, ", "))
	}
	return nil
}
