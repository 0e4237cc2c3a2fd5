package listings

import (
	"context"

	"github.com/devhubhq/server/devhub/listings"
	"github.com/devhubhq/server/devhub/users"
)

// Store is the slice of the listing repository the handlers need
type Store interface {
	Create(ctx context.Context, userID int64, req listings.CreateListingRequest) (*listings.Listing, error)
	ListPublic(ctx context.Context) ([]listings.Listing, error)
	ListByOwnerName(ctx context.Context, name string, includePrivate bool) ([]listings.Listing, error)
	ListRecentOwners(ctx context.Context) ([]listings.RecentOwner, error)
	GetWithOwner(ctx context.Context, listingID int64) (*listings.Listing, error)
	Delete(ctx context.Context, listingID int64) error
}

// OwnerResolver maps a GitHub ID to the local user record
type OwnerResolver interface {
	FindByGitHubID(ctx context.Context, githubID string) (*users.User, error)
}

// DeleteListingRequest carries the caller's ownership claim. When an
// authenticated session is present the session identity wins over these
// fields.
type DeleteListingRequest struct {
	UserID   int64  `json:"userId"`
	UserName string `json:"userName"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse acknowledges a delete
type SuccessResponse struct {
	Success bool `json:"success"`
}
