package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

// newTestClient points a Client at a local test server.
func newTestClient(t *testing.T, token string, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(context.Background(), token)
	base, err := url.Parse(srv.URL + "/")
	if err != nil {
		t.Fatalf("parsing test server URL: %v", err)
	}
	c.gh.BaseURL = base
	return c
}

func TestListUserRepos_MapsFields(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/users/octocat/repos") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("per_page"); got != "100" {
			t.Errorf("per_page = %q, want 100", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{
				"id": 7,
				"name": "blog",
				"full_name": "octocat/blog",
				"description": "My writing",
				"html_url": "https://github.com/octocat/blog",
				"homepage": "https://example.com",
				"has_pages": true,
				"language": "HTML",
				"stargazers_count": 42,
				"updated_at": "2024-03-09T14:30:00Z"
			},
			{
				"id": 8,
				"name": "scratch",
				"full_name": "octocat/scratch",
				"has_pages": false
			}
		]`)
	})

	c := newTestClient(t, "", handler)

	repos, err := c.ListUserRepos(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("ListUserRepos() error = %v", err)
	}
	if len(repos) != 2 {
		t.Fatalf("got %d repos, want 2", len(repos))
	}

	blog := repos[0]
	if blog.ID != 7 || blog.Name != "blog" || blog.FullName != "octocat/blog" {
		t.Errorf("identity fields not mapped: %+v", blog)
	}
	if blog.Description != "My writing" || blog.Homepage != "https://example.com" {
		t.Errorf("text fields not mapped: %+v", blog)
	}
	if !blog.HasPages || blog.Language != "HTML" || blog.Stars != 42 {
		t.Errorf("metadata fields not mapped: %+v", blog)
	}
	if blog.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not mapped")
	}
	if repos[1].HasPages {
		t.Error("scratch should not report pages enabled")
	}
}

func TestListUserRepos_ErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		token     string
		wantInMsg string
	}{
		{
			name:      "forbidden with token",
			status:    http.StatusForbidden,
			token:     "ghp_sometoken",
			wantInMsg: "invalid, expired, or missing scopes",
		},
		{
			name:      "forbidden without token",
			status:    http.StatusForbidden,
			token:     "",
			wantInMsg: "rate-limited",
		},
		{
			name:      "server error is generic",
			status:    http.StatusInternalServerError,
			token:     "",
			wantInMsg: "status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, `{"message":"nope"}`)
			})

			c := newTestClient(t, tt.token, handler)

			_, err := c.ListUserRepos(context.Background(), "octocat")
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var reqErr *RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("error = %T, want *RequestError", err)
			}
			if reqErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", reqErr.StatusCode, tt.status)
			}
			if !strings.Contains(err.Error(), tt.wantInMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantInMsg)
			}
		})
	}
}

func TestListUserRepos_EmptyUsername(t *testing.T) {
	c := NewClient(context.Background(), "")

	if _, err := c.ListUserRepos(context.Background(), "   "); err == nil {
		t.Error("expected error for blank username")
	}
}

func TestRequestError_Remediation(t *testing.T) {
	withToken := &RequestError{StatusCode: http.StatusForbidden, HasToken: true}
	if actions := withToken.Remediation(); len(actions) == 0 {
		t.Error("expected remediation actions for forbidden-with-token")
	}

	without := &RequestError{StatusCode: http.StatusForbidden}
	found := false
	for _, a := range without.Remediation() {
		if strings.Contains(a, "GITHUB_TOKEN") {
			found = true
		}
	}
	if !found {
		t.Error("forbidden-without-token remediation should mention GITHUB_TOKEN")
	}
}
