package listings

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles listing database operations
type Repository struct {
	db *pgxpool.Pool
}

// a user-authored pointer to a GitHub repository. OwnerName and
// OwnerAvatar are joined from the owning user row on every read.
type Listing struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UserID      int64     `json:"userId"`
	IsPublic    bool      `json:"isPublic"`
	RepoName    string    `json:"repoName"`
	OwnerName   string    `json:"name"`
	OwnerAvatar string    `json:"avatarUrl"`
}

// contains data for creating a listing. GitHubID names the owner and
// must resolve to an existing user; an empty value is simply an unknown
// owner. Empty titles and repo names are stored as-is.
type CreateListingRequest struct {
	ListingTitle string `json:"listingTitle" binding:"max=200"`
	ListingBio   string `json:"listingBio" binding:"max=2000"`
	ImageURL     string `json:"imageUrl" binding:"max=2000"`
	GitHubID     string `json:"githubId"`
	IsPublic     bool   `json:"isPublic"`
	RepoName     string `json:"repoName" binding:"max=200"`
}

// one entry of the recent-activity feed
type RecentOwner struct {
	Name string `json:"name"`
}
