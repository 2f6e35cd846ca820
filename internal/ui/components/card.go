package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/pagescope/internal/domain"
)

// RepoCard renders one repository as a bordered card.
type RepoCard struct {
	Repo     domain.Repo
	Username string
	Width    int
	Selected bool
}

// NewRepoCard creates a card for a repository.
func NewRepoCard(repo domain.Repo, username string, width int) *RepoCard {
	return &RepoCard{
		Repo:     repo,
		Username: username,
		Width:    width,
	}
}

// SetSelected marks the card as the grid cursor target.
func (c *RepoCard) SetSelected(selected bool) *RepoCard {
	c.Selected = selected
	return c
}

// Render renders the card.
func (c *RepoCard) Render() string {
	style := cardStyle
	titleStyle := cardTitleStyle
	if c.Selected {
		style = cardSelectedStyle
		titleStyle = cardTitleSelectedStyle
	}

	inner := c.Width - 4 // border and padding
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(domain.Truncate(c.Repo.Name, inner)))
	b.WriteString("\n")
	b.WriteString(textStyle.Width(inner).Render(c.Repo.DisplayDescription()))
	b.WriteString("\n")
	b.WriteString(c.renderMetaLine())
	b.WriteString("\n")
	b.WriteString(c.renderLinkLine(inner))

	return style.Width(inner).Render(b.String())
}

// renderMetaLine renders the language badge, star count, and updated date.
func (c *RepoCard) renderMetaLine() string {
	var parts []string

	if c.Repo.Language != "" {
		parts = append(parts, badgeStyle.Render("● "+c.Repo.Language))
	}
	parts = append(parts, mutedStyle.Render(fmt.Sprintf("★ %d", c.Repo.Stars)))
	parts = append(parts, mutedStyle.Render("Updated "+c.Repo.UpdatedDisplay()))

	return strings.Join(parts, "  ")
}

// renderLinkLine renders the site and repository links.
func (c *RepoCard) renderLinkLine(width int) string {
	site := linkStyle.Render(domain.Truncate(c.Repo.SiteURL(c.Username), width))
	repo := mutedStyle.Render(domain.Truncate(c.Repo.HTMLURL, width))
	return site + "\n" + repo
}

// PlaceholderCard renders a greyed-out card shown while a fetch is in
// flight.
func PlaceholderCard(width int) string {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	bar := mutedStyle.Render(strings.Repeat("░", inner))
	content := strings.Join([]string{bar, bar, bar, bar}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1).
		Width(inner).
		Render(content)
}
