package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/renato0307/beeper/internal/domain"
	"github.com/renato0307/beeper/internal/services"
)

// HistoryCmd shows the play history
type HistoryCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit  int    `help:"Number of recent plays to show" default:"20"`
}

type historyEvent struct {
	Error    string `json:"error,omitempty"`
	ID       string `json:"id"`
	Origin   string `json:"origin"`
	Outcome  string `json:"outcome"`
	PlayedAt string `json:"played_at"`
	Sound    string `json:"sound"`
}

type historyCount struct {
	Failed  int64  `json:"failed"`
	Played  int64  `json:"played"`
	Sound   string `json:"sound"`
	Total   int64  `json:"total"`
	Unknown int64  `json:"unknown"`
}

type historyOutput struct {
	Recent []historyEvent `json:"recent"`
	Sounds []historyCount `json:"sounds"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	ctx := context.Background()

	history, err := cli.Container.HistoryService()
	if err != nil {
		return err
	}

	output, err := h.collect(ctx, history)
	if err != nil {
		return err
	}

	if h.Format == "json" {
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	h.printTable(output)
	return nil
}

func (h *HistoryCmd) collect(ctx context.Context, history *services.HistoryService) (historyOutput, error) {
	events, err := history.Recent(ctx, h.Limit)
	if err != nil {
		return historyOutput{}, err
	}
	counts, err := history.Stats(ctx)
	if err != nil {
		return historyOutput{}, err
	}

	output := historyOutput{
		Recent: make([]historyEvent, 0, len(events)),
		Sounds: make([]historyCount, 0, len(counts)),
	}
	for _, e := range events {
		output.Recent = append(output.Recent, toHistoryEvent(e))
	}
	for _, c := range counts {
		output.Sounds = append(output.Sounds, historyCount{
			Failed:  c.Failed,
			Played:  c.Played,
			Sound:   c.Sound,
			Total:   c.Total(),
			Unknown: c.Unknown,
		})
	}
	return output, nil
}

func (h *HistoryCmd) printTable(output historyOutput) {
	if len(output.Recent) == 0 {
		fmt.Println("No plays recorded yet.")
		return
	}

	fmt.Println("Recent plays")
	fmt.Println(strings.Repeat("─", 60))
	for _, e := range output.Recent {
		line := fmt.Sprintf("%s  %-7s %-8s %s", e.PlayedAt, e.Origin, e.Outcome, e.Sound)
		if e.Error != "" {
			line += "  (" + e.Error + ")"
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Println("Sound            Played   Unknown  Failed")
	fmt.Println(strings.Repeat("─", 60))
	for _, c := range output.Sounds {
		fmt.Printf("%-16s %-8d %-8d %d\n", c.Sound, c.Played, c.Unknown, c.Failed)
	}
}

func toHistoryEvent(e domain.PlayEvent) historyEvent {
	return historyEvent{
		Error:    e.Error,
		ID:       e.ID,
		Origin:   e.Origin,
		Outcome:  string(e.Outcome),
		PlayedAt: e.PlayedAt.UTC().Format(time.RFC3339),
		Sound:    e.Sound,
	}
}
