package auth

import (
	"context"

	"github.com/devhubhq/server/devhub/users"
)

// UserStore is the slice of the user repository the callback needs
type UserStore interface {
	FindOrCreateByGitHubID(ctx context.Context, githubID, name, email, avatarURL, accessToken string) (*users.User, error)
}
