package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/pagescope/internal/ui/components"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(components.ColorPrimary).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(components.ColorMuted)

	labelStyle = lipgloss.NewStyle().
			Foreground(components.ColorText).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(components.ColorMuted).
			Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(components.ColorMuted)

	loadingStyle = lipgloss.NewStyle().
			Foreground(components.ColorWarning)
)
