package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// There is no migration system; the schema is created idempotently at
// startup. CREATE TABLE IF NOT EXISTS is safe to run on every boot.
const (
	schemaUsers = `
		CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			github_id     TEXT NOT NULL UNIQUE,
			name          TEXT NOT NULL DEFAULT '',
			email         TEXT NOT NULL DEFAULT '',
			avatar_url    TEXT NOT NULL DEFAULT '',
			bio           TEXT NOT NULL DEFAULT '',
			location      TEXT NOT NULL DEFAULT '',
			portfolio_url TEXT NOT NULL DEFAULT '',
			roles         TEXT NOT NULL DEFAULT '',
			experience    TEXT NOT NULL DEFAULT '',
			availability  TEXT NOT NULL DEFAULT '',
			languages     TEXT NOT NULL DEFAULT '[]',
			access_token  TEXT NOT NULL DEFAULT '',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	schemaListings = `
		CREATE TABLE IF NOT EXISTS listings (
			id          BIGSERIAL PRIMARY KEY,
			title       TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			image_url   TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			user_id     BIGINT NOT NULL REFERENCES users(id),
			is_public   BOOLEAN NOT NULL DEFAULT TRUE,
			repo_name   TEXT NOT NULL DEFAULT ''
		)
	`

	indexListingsUser = `
		CREATE INDEX IF NOT EXISTS idx_listings_user_id ON listings(user_id)
	`

	indexListingsCreated = `
		CREATE INDEX IF NOT EXISTS idx_listings_created_at ON listings(created_at)
	`
)

// creates the users and listings tables if they do not exist yet
func Bootstrap(ctx context.Context, db *pgxpool.Pool) error {
	statements := []string{
		schemaUsers,
		schemaListings,
		indexListingsUser,
		indexListingsCreated,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to bootstrap schema: %w", err)
		}
	}

	return nil
}
