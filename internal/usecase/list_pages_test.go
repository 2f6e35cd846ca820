package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/yourusername/pagescope/internal/domain"
)

type stubLister struct {
	repos []domain.Repo
	err   error
	calls []string
}

func (s *stubLister) ListUserRepos(_ context.Context, username string) ([]domain.Repo, error) {
	s.calls = append(s.calls, username)
	return s.repos, s.err
}

func TestListPagesUseCase_NarrowsToPagesEnabled(t *testing.T) {
	lister := &stubLister{
		repos: []domain.Repo{
			{Name: "blog", HasPages: true},
			{Name: "scratch", HasPages: false},
			{Name: "docs", HasPages: true},
		},
	}
	uc := NewListPagesUseCase(lister)

	resp, err := uc.Execute(context.Background(), ListPagesRequest{Username: "octocat"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if resp.Username != "octocat" {
		t.Errorf("Username = %q, want octocat", resp.Username)
	}
	if len(resp.Repos) != 2 {
		t.Fatalf("got %d repos, want 2", len(resp.Repos))
	}
	for _, r := range resp.Repos {
		if !r.HasPages {
			t.Errorf("repo %q without pages survived narrowing", r.Name)
		}
	}
	if len(lister.calls) != 1 || lister.calls[0] != "octocat" {
		t.Errorf("lister calls = %v, want one call for octocat", lister.calls)
	}
}

func TestListPagesUseCase_ZeroPagesRepos(t *testing.T) {
	lister := &stubLister{
		repos: []domain.Repo{{Name: "scratch", HasPages: false}},
	}
	uc := NewListPagesUseCase(lister)

	resp, err := uc.Execute(context.Background(), ListPagesRequest{Username: "octocat"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(resp.Repos) != 0 {
		t.Errorf("got %d repos, want 0", len(resp.Repos))
	}
}

func TestListPagesUseCase_PropagatesFetchError(t *testing.T) {
	wantErr := errors.New("boom")
	uc := NewListPagesUseCase(&stubLister{err: wantErr})

	_, err := uc.Execute(context.Background(), ListPagesRequest{Username: "octocat"})
	if !errors.Is(err, wantErr) {
		t.Errorf("Execute() error = %v, want %v", err, wantErr)
	}
}
