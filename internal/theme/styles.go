package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Board list styles
var (
	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorCursor).
			Bold(true)

	PositionStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	SourcesStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Play outcome styles
var (
	FailedStyle = lipgloss.NewStyle().
			Foreground(ColorFailed)

	PlayedStyle = lipgloss.NewStyle().
			Foreground(ColorPlayed)

	UnknownStyle = lipgloss.NewStyle().
			Foreground(ColorUnknown)
)
