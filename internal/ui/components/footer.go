package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shortcut is one keyboard hint in the footer.
type Shortcut struct {
	Key         string
	Description string
}

// Footer renders the keyboard hint bar.
type Footer struct {
	Shortcuts []Shortcut
	Metadata  string
	Width     int
}

// NewFooter creates a footer.
func NewFooter(shortcuts []Shortcut) *Footer {
	return &Footer{Shortcuts: shortcuts}
}

// WithMetadata adds right-aligned metadata.
func (f *Footer) WithMetadata(metadata string) *Footer {
	f.Metadata = metadata
	return f
}

// WithWidth sets the footer width.
func (f *Footer) WithWidth(width int) *Footer {
	f.Width = width
	return f
}

// Render renders the footer.
func (f *Footer) Render() string {
	keyStyle := lipgloss.NewStyle().Foreground(ColorPrimary)

	var parts []string
	for _, s := range f.Shortcuts {
		parts = append(parts, keyStyle.Render(s.Key)+" "+mutedStyle.Render(s.Description))
	}
	line := strings.Join(parts, " • ")

	if f.Metadata == "" {
		return line
	}

	meta := mutedStyle.Italic(true).Render(f.Metadata)
	if f.Width > 0 {
		spacing := f.Width - lipgloss.Width(line) - lipgloss.Width(meta)
		if spacing > 0 {
			return line + strings.Repeat(" ", spacing) + meta
		}
	}
	return line + " " + meta
}
