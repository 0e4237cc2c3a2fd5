package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// creates a new user repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// finds a user by GitHub ID or creates one on first login. Only the
// fields supplied by the provider are populated on insert; the stored
// access token is refreshed on every login.
func (r *Repository) FindOrCreateByGitHubID(
	ctx context.Context,
	githubID, name, email, avatarURL, accessToken string,
) (*User, error) {
	var user User

	err := r.db.QueryRow(
		ctx,
		queryFindOrCreateByGitHubID,
		githubID,
		name,
		email,
		avatarURL,
		accessToken,
	).Scan(
		&user.ID,
		&user.GitHubID,
		&user.Name,
		&user.Email,
		&user.AvatarURL,
		&user.Bio,
		&user.Location,
		&user.PortfolioURL,
		&user.Roles,
		&user.Experience,
		&user.Availability,
		&user.Languages,
		&user.AccessToken,
		&user.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// finds a user by their GitHub ID
func (r *Repository) FindByGitHubID(ctx context.Context, githubID string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryFindByGitHubID, githubID).Scan(
		&user.ID,
		&user.GitHubID,
		&user.Name,
		&user.Email,
		&user.AvatarURL,
		&user.Bio,
		&user.Location,
		&user.PortfolioURL,
		&user.Roles,
		&user.Experience,
		&user.Availability,
		&user.Languages,
		&user.AccessToken,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return &user, nil
}

// finds a user by display name. Display name carries no uniqueness
// constraint; the first match wins.
func (r *Repository) FindByName(ctx context.Context, name string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryFindByName, name).Scan(
		&user.ID,
		&user.GitHubID,
		&user.Name,
		&user.Email,
		&user.AvatarURL,
		&user.Bio,
		&user.Location,
		&user.PortfolioURL,
		&user.Roles,
		&user.Experience,
		&user.Availability,
		&user.Languages,
		&user.AccessToken,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return &user, nil
}

// overwrites the extended profile fields of the user behind githubID
func (r *Repository) UpdateProfile(
	ctx context.Context,
	githubID string,
	req UpdateProfileRequest,
) (*User, error) {
	var user User

	languages := LanguageList(req.Languages)
	if languages == nil {
		languages = LanguageList{}
	}

	err := r.db.QueryRow(
		ctx,
		queryUpdateProfile,
		req.Bio,
		req.Location,
		req.PortfolioURL,
		req.Roles,
		req.Experience,
		req.Availability,
		languages,
		githubID,
	).Scan(
		&user.ID,
		&user.GitHubID,
		&user.Name,
		&user.Email,
		&user.AvatarURL,
		&user.Bio,
		&user.Location,
		&user.PortfolioURL,
		&user.Roles,
		&user.Experience,
		&user.Availability,
		&user.Languages,
		&user.AccessToken,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return &user, nil
}

// returns the stored provider access token for delegated API calls
func (r *Repository) AccessTokenByGitHubID(ctx context.Context, githubID string) (string, error) {
	var token string

	err := r.db.QueryRow(ctx, queryAccessTokenByGitHubID, githubID).Scan(&token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrUserNotFound
		}

		return "", err
	}

	return token, nil
}
