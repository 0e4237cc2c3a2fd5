package users

const (
	queryFindOrCreateByGitHubID = `
		INSERT INTO users (github_id, name, email, avatar_url, access_token)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (github_id)
		DO UPDATE SET
			access_token = EXCLUDED.access_token
		RETURNING id, github_id, name, email, avatar_url, bio, location, portfolio_url, roles, experience, availability, languages, access_token, created_at
	`

	queryFindByGitHubID = `
		SELECT id, github_id, name, email, avatar_url, bio, location, portfolio_url, roles, experience, availability, languages, access_token, created_at
		FROM users
		WHERE github_id = $1
	`

	queryFindByName = `
		SELECT id, github_id, name, email, avatar_url, bio, location, portfolio_url, roles, experience, availability, languages, access_token, created_at
		FROM users
		WHERE name = $1
		LIMIT 1
	`

	queryUpdateProfile = `
		UPDATE users
		SET bio = $1, location = $2, portfolio_url = $3, roles = $4, experience = $5, availability = $6, languages = $7
		WHERE github_id = $8
		RETURNING id, github_id, name, email, avatar_url, bio, location, portfolio_url, roles, experience, availability, languages, access_token, created_at
	`

	queryAccessTokenByGitHubID = `
		SELECT access_token
		FROM users
		WHERE github_id = $1
	`
)
