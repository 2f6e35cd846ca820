// Package github wraps the GitHub REST API for listing a user's repositories.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	gogithub "github.com/google/go-github/v55/github"
	"golang.org/x/oauth2"

	"github.com/yourusername/pagescope/internal/domain"
)

// listPageSize is the single page of results requested; pagination beyond
// this is out of scope.
const listPageSize = 100

// RequestError is returned when the listing endpoint answers with a
// non-success status. It distinguishes a forbidden response with a token
// configured from one without, so the UI can suggest the right remedy.
type RequestError struct {
	StatusCode int
	HasToken   bool
}

func (e *RequestError) Error() string {
	switch {
	case e.StatusCode == http.StatusForbidden && e.HasToken:
		return "GitHub rejected the request (403): the configured token may be invalid, expired, or missing scopes"
	case e.StatusCode == http.StatusForbidden:
		return "GitHub rejected the request (403): likely rate-limited for unauthenticated calls"
	default:
		return fmt.Sprintf("GitHub API returned status %d", e.StatusCode)
	}
}

// Remediation returns suggested actions for the error banner.
func (e *RequestError) Remediation() []string {
	switch {
	case e.StatusCode == http.StatusForbidden && e.HasToken:
		return []string{
			"Check that the token has not expired",
			"Regenerate the token and run 'pagescope config --token <token>'",
		}
	case e.StatusCode == http.StatusForbidden:
		return []string{
			"Set GITHUB_TOKEN or run 'pagescope config --token <token>' to raise the rate limit",
			"Wait a few minutes and try again",
		}
	default:
		return []string{"Check the username and try again"}
	}
}

// Client lists repositories for a user.
type Client struct {
	gh       *gogithub.Client
	hasToken bool
}

// NewClient creates a client. When token is non-empty, requests carry it as
// a bearer credential via an oauth2 transport.
func NewClient(ctx context.Context, token string) *Client {
	var httpClient *http.Client
	if token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, src)
	}

	return &Client{
		gh:       gogithub.NewClient(httpClient),
		hasToken: token != "",
	}
}

// ListUserRepos fetches up to one page of the user's repositories. The
// returned set is unfiltered; narrowing to Pages-enabled repositories is the
// caller's concern.
func (c *Client) ListUserRepos(ctx context.Context, username string) ([]domain.Repo, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username cannot be empty")
	}

	opt := &gogithub.RepositoryListOptions{
		ListOptions: gogithub.ListOptions{PerPage: listPageSize},
	}

	ghRepos, resp, err := c.gh.Repositories.List(ctx, username, opt)
	if err != nil {
		if resp != nil && resp.StatusCode >= http.StatusBadRequest {
			return nil, &RequestError{StatusCode: resp.StatusCode, HasToken: c.hasToken}
		}
		return nil, fmt.Errorf("listing repositories for %s: %w", username, err)
	}

	repos := make([]domain.Repo, 0, len(ghRepos))
	for _, gr := range ghRepos {
		repos = append(repos, toDomain(gr))
	}
	return repos, nil
}

func toDomain(gr *gogithub.Repository) domain.Repo {
	return domain.Repo{
		ID:          gr.GetID(),
		Name:        gr.GetName(),
		FullName:    gr.GetFullName(),
		Description: gr.GetDescription(),
		HTMLURL:     gr.GetHTMLURL(),
		Homepage:    gr.GetHomepage(),
		HasPages:    gr.GetHasPages(),
		Language:    gr.GetLanguage(),
		Stars:       gr.GetStargazersCount(),
		UpdatedAt:   gr.GetUpdatedAt().Time,
	}
}
