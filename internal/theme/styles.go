package theme

import "github.com/charmbracelet/lipgloss"

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Status line styles
var (
	FailStyle = lipgloss.NewStyle().
			Foreground(ColorFail)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorSpinner)

	SucceedStyle = lipgloss.NewStyle().
			Foreground(ColorSucceed)

	WarnStyle = lipgloss.NewStyle().
			Foreground(ColorWarn)
)

// Ticket view styles
var (
	DescriptionStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	MetaStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	MetaValueStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Markdown styles
var (
	CodeStyle = lipgloss.NewStyle().
			Foreground(ColorCode)

	EmphasisStyle = lipgloss.NewStyle().
			Italic(true)

	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	LinkStyle = lipgloss.NewStyle().
			Foreground(ColorLink).
			Underline(true)

	QuoteStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	StrikethroughStyle = lipgloss.NewStyle().
				Strikethrough(true)

	StrongStyle = lipgloss.NewStyle().
			Bold(true)
)
