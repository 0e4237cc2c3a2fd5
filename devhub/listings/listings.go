package listings

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrListingNotFound = errors.New("listing not found")
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// inserts a new listing owned by userID. Duplicate listings for the
// same repository are permitted.
func (r *Repository) Create(ctx context.Context, userID int64, req CreateListingRequest) (*Listing, error) {
	var listing Listing

	err := r.db.QueryRow(
		ctx,
		queryCreate,
		req.ListingTitle,
		req.ListingBio,
		req.ImageURL,
		userID,
		req.IsPublic,
		req.RepoName,
	).Scan(
		&listing.ID,
		&listing.Title,
		&listing.Description,
		&listing.ImageURL,
		&listing.CreatedAt,
		&listing.UserID,
		&listing.IsPublic,
		&listing.RepoName,
	)

	if err != nil {
		return nil, err
	}

	return &listing, nil
}

// returns all public listings, newest first, with owner name and avatar
func (r *Repository) ListPublic(ctx context.Context) ([]Listing, error) {
	rows, err := r.db.Query(ctx, queryListPublic)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanListings(rows)
}

// returns the listings owned by the named user, newest first. Private
// listings are included only when includePrivate is set.
func (r *Repository) ListByOwnerName(ctx context.Context, name string, includePrivate bool) ([]Listing, error) {
	query := queryListPublicByOwnerName

	if includePrivate {
		query = queryListByOwnerName
	}

	rows, err := r.db.Query(ctx, query, name)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanListings(rows)
}

// returns the distinct display names behind the ten most recently
// created listings, most recent first
func (r *Repository) ListRecentOwners(ctx context.Context) ([]RecentOwner, error) {
	rows, err := r.db.Query(ctx, queryListRecentOwners)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	owners := []RecentOwner{}

	for rows.Next() {
		var owner RecentOwner
		if err := rows.Scan(&owner.Name); err != nil {
			return nil, err
		}

		owners = append(owners, owner)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return owners, nil
}

// loads a listing joined with its true owner's name and avatar
func (r *Repository) GetWithOwner(ctx context.Context, listingID int64) (*Listing, error) {
	var listing Listing

	err := r.db.QueryRow(ctx, queryGetWithOwner, listingID).Scan(
		&listing.ID,
		&listing.Title,
		&listing.Description,
		&listing.ImageURL,
		&listing.CreatedAt,
		&listing.UserID,
		&listing.IsPublic,
		&listing.RepoName,
		&listing.OwnerName,
		&listing.OwnerAvatar,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrListingNotFound
		}

		return nil, err
	}

	return &listing, nil
}

// removes a listing. Ownership is verified by the caller against
// GetWithOwner before deleting.
func (r *Repository) Delete(ctx context.Context, listingID int64) error {
	result, err := r.db.Exec(ctx, queryDelete, listingID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrListingNotFound
	}

	return nil
}

func scanListings(rows pgx.Rows) ([]Listing, error) {
	result := []Listing{}

	for rows.Next() {
		var l Listing
		err := rows.Scan(
			&l.ID,
			&l.Title,
			&l.Description,
			&l.ImageURL,
			&l.CreatedAt,
			&l.UserID,
			&l.IsPublic,
			&l.RepoName,
			&l.OwnerName,
			&l.OwnerAvatar,
		)
		if err != nil {
			return nil, err
		}

		result = append(result, l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
