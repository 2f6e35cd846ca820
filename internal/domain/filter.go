package domain

import "strings"

// Filter retains the repositories whose name or description contains term,
// compared case-insensitively. An empty term returns the input set as-is.
func Filter(repos []Repo, term string) []Repo {
	if term == "" {
		return repos
	}

	t := strings.ToLower(term)
	filtered := make([]Repo, 0, len(repos))
	for _, r := range repos {
		if strings.Contains(strings.ToLower(r.Name), t) ||
			strings.Contains(strings.ToLower(r.Description), t) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
