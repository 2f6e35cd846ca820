package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DescriptionLimit is the number of runes shown on a card before the
	// description is cut off.
	DescriptionLimit = 120

	// DescriptionPlaceholder is rendered when a repository has no description.
	DescriptionPlaceholder = "No description provided"
)

// Repo is a summary of a single repository as returned by the listing API.
// Values are taken verbatim from the upstream response and never mutated;
// a new slice replaces the old one on every fetch.
type Repo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description,omitempty"`
	HTMLURL     string    `json:"html_url"`
	Homepage    string    `json:"homepage,omitempty"`
	HasPages    bool      `json:"has_pages"`
	Language    string    `json:"language,omitempty"`
	Stars       int       `json:"stars"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SiteURL returns the link to the live Pages site. The homepage field wins
// when it carries an http(s) URL; otherwise the canonical
// https://<username>.github.io/<name> address is derived.
func (r Repo) SiteURL(username string) string {
	if strings.HasPrefix(r.Homepage, "http://") || strings.HasPrefix(r.Homepage, "https://") {
		return r.Homepage
	}
	return fmt.Sprintf("https://%s.github.io/%s", username, r.Name)
}

// DisplayDescription returns the description trimmed for card display, or
// the placeholder text when the repository has none.
func (r Repo) DisplayDescription() string {
	if r.Description == "" {
		return DescriptionPlaceholder
	}
	return Truncate(r.Description, DescriptionLimit)
}

// UpdatedDisplay formats the last-updated timestamp for card display.
func (r Repo) UpdatedDisplay() string {
	return r.UpdatedAt.Format("Jan 2, 2006")
}

// Truncate cuts s after limit runes and appends an ellipsis. Strings at or
// under the limit are returned unchanged.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}

// PagesOnly narrows a fetched set to the repositories with Pages enabled.
func PagesOnly(repos []Repo) []Repo {
	filtered := make([]Repo, 0, len(repos))
	for _, r := range repos {
		if r.HasPages {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
