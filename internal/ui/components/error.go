package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/pagescope/internal/ui/layout"
)

// ErrorBanner renders a fetch failure with remediation guidance.
type ErrorBanner struct {
	Title   string
	Message string
	Actions []string
	Width   int
}

// NewErrorBanner creates a banner with the default title.
func NewErrorBanner(message string) *ErrorBanner {
	return &ErrorBanner{
		Title:   "Fetch failed",
		Message: message,
	}
}

// WithTitle sets a custom title.
func (eb *ErrorBanner) WithTitle(title string) *ErrorBanner {
	eb.Title = title
	return eb
}

// WithActions adds suggested actions.
func (eb *ErrorBanner) WithActions(actions ...string) *ErrorBanner {
	eb.Actions = actions
	return eb
}

// WithWidth sets the banner width.
func (eb *ErrorBanner) WithWidth(width int) *ErrorBanner {
	eb.Width = width
	return eb
}

// Render renders the banner.
func (eb *ErrorBanner) Render() string {
	bannerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorError).
		Padding(layout.SpacingXS, layout.SpacingSM)

	if eb.Width > 0 {
		bannerStyle = bannerStyle.Width(eb.Width - (layout.SpacingSM * 2) - 2)
	}

	titleStyle := lipgloss.NewStyle().Foreground(ColorError).Bold(true)

	var content strings.Builder
	content.WriteString(titleStyle.Render("✗ " + eb.Title))
	content.WriteString("\n")
	content.WriteString(textStyle.Render(eb.Message))

	if len(eb.Actions) > 0 {
		content.WriteString("\n\n")
		content.WriteString(mutedStyle.Render("Suggested actions:"))
		for _, action := range eb.Actions {
			content.WriteString("\n")
			content.WriteString(textStyle.Render("  • " + action))
		}
	}

	return bannerStyle.Render(content.String())
}
