package listings

const (
	queryCreate = `
		INSERT INTO listings (title, description, image_url, user_id, is_public, repo_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, description, image_url, created_at, user_id, is_public, repo_name
	`

	queryListPublic = `
		SELECT l.id, l.title, l.description, l.image_url, l.created_at, l.user_id, l.is_public, l.repo_name, u.name, u.avatar_url
		FROM listings l
		JOIN users u ON l.user_id = u.id
		WHERE l.is_public = TRUE
		ORDER BY l.created_at DESC
	`

	queryListByOwnerName = `
		SELECT l.id, l.title, l.description, l.image_url, l.created_at, l.user_id, l.is_public, l.repo_name, u.name, u.avatar_url
		FROM listings l
		JOIN users u ON l.user_id = u.id
		WHERE u.name = $1
		ORDER BY l.created_at DESC
	`

	queryListPublicByOwnerName = `
		SELECT l.id, l.title, l.description, l.image_url, l.created_at, l.user_id, l.is_public, l.repo_name, u.name, u.avatar_url
		FROM listings l
		JOIN users u ON l.user_id = u.id
		WHERE u.name = $1 AND l.is_public = TRUE
		ORDER BY l.created_at DESC
	`

	// distinct owners of the most recent listings, most recent first.
	// DISTINCT plus ORDER BY another table's column is not valid in
	// Postgres, so this groups by owner and sorts on the latest listing.
	queryListRecentOwners = `
		SELECT u.name
		FROM listings l
		JOIN users u ON l.user_id = u.id
		GROUP BY u.id, u.name
		ORDER BY MAX(l.id) DESC
		LIMIT 10
	`

	queryGetWithOwner = `
		SELECT l.id, l.title, l.description, l.image_url, l.created_at, l.user_id, l.is_public, l.repo_name, u.name, u.avatar_url
		FROM listings l
		JOIN users u ON l.user_id = u.id
		WHERE l.id = $1
	`

	queryDelete = `
		DELETE FROM listings
		WHERE id = $1
	`
)
