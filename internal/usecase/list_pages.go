package usecase

import (
	"context"

	"github.com/yourusername/pagescope/internal/domain"
)

// RepoLister fetches a user's repositories.
type RepoLister interface {
	ListUserRepos(ctx context.Context, username string) ([]domain.Repo, error)
}

// ListPagesRequest contains the input for listing Pages repositories.
type ListPagesRequest struct {
	Username string
}

// ListPagesResponse contains the Pages-enabled repositories for a user.
type ListPagesResponse struct {
	Username string
	Repos    []domain.Repo
}

// ListPagesUseCase fetches a user's repositories and narrows them to the
// ones with a Pages site.
type ListPagesUseCase struct {
	lister RepoLister
}

// NewListPagesUseCase creates the use case.
func NewListPagesUseCase(lister RepoLister) *ListPagesUseCase {
	return &ListPagesUseCase{lister: lister}
}

// Execute performs the fetch. The result replaces any previously held set;
// fetch errors are returned as-is so the UI can classify them.
func (uc *ListPagesUseCase) Execute(ctx context.Context, req ListPagesRequest) (*ListPagesResponse, error) {
	repos, err := uc.lister.ListUserRepos(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	return &ListPagesResponse{
		Username: req.Username,
		Repos:    domain.PagesOnly(repos),
	}, nil
}
