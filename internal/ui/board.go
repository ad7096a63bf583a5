package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/beeper/internal/domain"
	"github.com/renato0307/beeper/internal/logging"
	"github.com/renato0307/beeper/internal/theme"
)

// SoundPlayer plays a sound by name on behalf of a front-end
type SoundPlayer interface {
	Play(ctx context.Context, name string, origin string) error
}

// playedMsg reports the outcome of a play request started by the board
type playedMsg struct {
	err  error
	name string
}

// Board is a Bubble Tea model listing the registered sounds
type Board struct {
	cursor int
	help   help.Model
	keys   BoardKeys
	last   *playedMsg // Outcome of the most recent play, nil before the first
	names  []string
	origin string
	player SoundPlayer
	plays  int
	title  string
}

// NewBoard creates a sound board for the given names
func NewBoard(player SoundPlayer, names []string, origin string) *Board {
	return &Board{
		help:   help.New(),
		keys:   DefaultBoardKeys(),
		names:  append([]string(nil), names...),
		origin: origin,
		player: player,
		title:  "beeper",
	}
}

// WithTitle sets the board title
func (b *Board) WithTitle(title string) *Board {
	b.title = title
	return b
}

// Cursor returns the index of the selected sound
func (b *Board) Cursor() int {
	return b.cursor
}

func (b *Board) Init() tea.Cmd {
	return nil
}

func (b *Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.help.Width = msg.Width
		return b, nil

	case playedMsg:
		b.last = &msg
		b.plays++
		return b, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keys.Quit):
			return b, tea.Quit
		case key.Matches(msg, b.keys.Help):
			b.help.ShowAll = !b.help.ShowAll
		case key.Matches(msg, b.keys.Up):
			if b.cursor > 0 {
				b.cursor--
			}
		case key.Matches(msg, b.keys.Down):
			if b.cursor < len(b.names)-1 {
				b.cursor++
			}
		case key.Matches(msg, b.keys.Play):
			if len(b.names) > 0 {
				return b, b.play(b.names[b.cursor])
			}
		case key.Matches(msg, b.keys.Position):
			index := int(msg.String()[0] - '1')
			if index < len(b.names) {
				b.cursor = index
				return b, b.play(b.names[index])
			}
		}
	}

	return b, nil
}

// play runs the request off the event loop so a slow backend never blocks input
func (b *Board) play(name string) tea.Cmd {
	return func() tea.Msg {
		err := b.player.Play(context.Background(), name, b.origin)
		if err != nil {
			logging.Logger.Debug("Board play failed", "sound", name, "error", err)
		}
		return playedMsg{err: err, name: name}
	}
}

func (b *Board) View() string {
	var sb strings.Builder

	sb.WriteString(theme.TitleStyle.Render(b.title))
	sb.WriteString("\n")

	if len(b.names) == 0 {
		sb.WriteString(theme.SourcesStyle.Render("No sounds registered"))
		sb.WriteString("\n")
	}

	for i, name := range b.names {
		cursor := "  "
		label := theme.NormalStyle.Render(name)
		if i == b.cursor {
			cursor = theme.CursorStyle.Render("› ")
			label = theme.SelectedStyle.Render(name)
		}

		position := "   "
		if i < 9 {
			position = theme.PositionStyle.Render(fmt.Sprintf("%d. ", i+1))
		}

		sb.WriteString(cursor + position + label + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(b.statusLine())
	sb.WriteString("\n")
	sb.WriteString(theme.HelpStyle.Render(b.help.View(b.keys)))

	return sb.String()
}

func (b *Board) statusLine() string {
	if b.last == nil {
		return theme.SourcesStyle.Render("Nothing played yet")
	}

	if b.last.err == nil {
		return theme.PlayedStyle.Render(fmt.Sprintf("♪ played %s (%d)", b.last.name, b.plays))
	}

	if errors.Is(b.last.err, domain.ErrUnknownSound) {
		return theme.UnknownStyle.Render(b.last.err.Error())
	}
	return theme.FailedStyle.Render(b.last.err.Error())
}
