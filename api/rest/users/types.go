package users

import (
	"context"

	"github.com/devhubhq/server/devhub/users"
	"github.com/devhubhq/server/internal/githubapi"
)

// Store is the slice of the user repository the handlers need
type Store interface {
	FindByGitHubID(ctx context.Context, githubID string) (*users.User, error)
	FindByName(ctx context.Context, name string) (*users.User, error)
	UpdateProfile(ctx context.Context, githubID string, req users.UpdateProfileRequest) (*users.User, error)
	AccessTokenByGitHubID(ctx context.Context, githubID string) (string, error)
}

// RepoLister proxies the provider's "list my repositories" API
type RepoLister interface {
	ListRepositories(ctx context.Context, accessToken string) ([]githubapi.Repository, error)
}

// UpdateProfileResponse acknowledges a profile update
type UpdateProfileResponse struct {
	Success bool        `json:"success"`
	User    *users.User `json:"user"`
}
