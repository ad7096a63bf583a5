package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary Color = "99" // Purple - app name, titles
)

// Play outcome colors
const (
	ColorFailed  Color = "1" // Red
	ColorPlayed  Color = "2" // Green
	ColorUnknown Color = "3" // Yellow
)

// UI semantic colors
const (
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
)

// Accent colors
const (
	ColorCursor Color = "205" // Pink
)
