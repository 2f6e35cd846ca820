package components

import "github.com/charmbracelet/lipgloss"

// Shared palette for the card grid and banners.
var (
	ColorPrimary = lipgloss.Color("212")
	ColorSuccess = lipgloss.Color("42")
	ColorWarning = lipgloss.Color("214")
	ColorError   = lipgloss.Color("196")
	ColorMuted   = lipgloss.Color("241")
	ColorText    = lipgloss.Color("252")
	ColorBorder  = lipgloss.Color("238")
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	cardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	cardTitleSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	mutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	textStyle  = lipgloss.NewStyle().Foreground(ColorText)

	badgeStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	linkStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Underline(true)
)
