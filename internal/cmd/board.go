package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/beeper/internal/domain"
	"github.com/renato0307/beeper/internal/logging"
	"github.com/renato0307/beeper/internal/ui"
)

// BoardCmd opens the interactive sound board
type BoardCmd struct{}

// Run executes the board command
func (b *BoardCmd) Run(cli *CLI) error {
	playback, err := cli.Container.PlaybackService(context.Background())
	if err != nil {
		return err
	}

	board := ui.NewBoard(playback, playback.Sounds(), domain.OriginBoard).
		WithTitle(fmt.Sprintf("beeper · %s", cli.Preset))

	p := tea.NewProgram(board, tea.WithAltScreen())

	logging.Logger.Info("Starting board")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("Board program error", "error", err)
		return fmt.Errorf("error running board: %w", err)
	}

	logging.Logger.Info("Board exited normally")
	return nil
}
