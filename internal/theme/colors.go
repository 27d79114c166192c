package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - titles
	ColorSecondary Color = "86" // Cyan - ticket metadata
)

// Status colors
const (
	ColorFail    Color = "1" // Red
	ColorSucceed Color = "2" // Green
	ColorWarn    Color = "3" // Yellow
)

// Issue type colors
const (
	ColorTypeBug     Color = "1" // Red
	ColorTypeDefault Color = "7" // White
	ColorTypeEpic    Color = "5" // Magenta
	ColorTypeMuted   Color = "8" // Gray - investigation, support
	ColorTypeStory   Color = "2" // Green
	ColorTypeTask    Color = "4" // Blue - task, subtask
)

// UI semantic colors
const (
	ColorCode      Color = "214" // Orange - code spans and blocks
	ColorHighlight Color = "255" // White - emphasis
	ColorLink      Color = "33"  // Blue
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSpinner   Color = "205" // Pink
)
