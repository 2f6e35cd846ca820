package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/pagescope/internal/domain"
	"github.com/yourusername/pagescope/internal/ui/components"
)

var (
	errorPrefix = lipgloss.NewStyle().
			Foreground(components.ColorError).
			Bold(true).
			Render("[ERROR]")

	infoPrefix = lipgloss.NewStyle().
			Foreground(components.ColorPrimary).
			Bold(true).
			Render("[INFO]")
)

// PrintError prints an error message for the non-interactive commands.
func PrintError(message string) {
	fmt.Printf("%s %s\n", errorPrefix, message)
}

// PrintInfo prints an info message for the non-interactive commands.
func PrintInfo(message string) {
	fmt.Printf("%s %s\n", infoPrefix, message)
}

// FormatRepoLine renders one repository for plain terminal output.
func FormatRepoLine(r domain.Repo, username string) string {
	nameStyle := lipgloss.NewStyle().Foreground(components.ColorPrimary).Bold(true)
	muted := lipgloss.NewStyle().Foreground(components.ColorMuted)

	line := nameStyle.Render(r.Name)
	if r.Language != "" {
		line += "  " + muted.Render(r.Language)
	}
	line += "  " + muted.Render(fmt.Sprintf("★ %d", r.Stars))
	line += "  " + muted.Render("updated "+r.UpdatedDisplay())
	line += "\n    " + r.DisplayDescription()
	line += "\n    " + muted.Render("site: ") + r.SiteURL(username)
	line += "\n    " + muted.Render("repo: ") + r.HTMLURL

	return line
}
