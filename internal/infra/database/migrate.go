package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/xavierca1/leadcapture/internal/entity"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id                 TEXT PRIMARY KEY,
		email              TEXT NOT NULL UNIQUE,
		password_hash      TEXT NOT NULL,
		wa_access_token    TEXT,
		wa_phone_number_id TEXT UNIQUE,
		wa_verify_token    TEXT,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id        BIGSERIAL PRIMARY KEY,
		user_id   TEXT NOT NULL REFERENCES users(id),
		phone     TEXT NOT NULL DEFAULT '',
		name      TEXT NOT NULL DEFAULT '',
		message   TEXT NOT NULL DEFAULT '',
		timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		handled   INT NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_user_id ON leads (user_id, id DESC)`,
}

// The default tenant starts unclaimed; the first signup with its email
// sets the password.
const seedDefaultTenant = `
	INSERT INTO users (id, email, password_hash)
	VALUES ($1, $2, $3)
	ON CONFLICT DO NOTHING
`

// Migrate creates the schema and seeds the default tenant that owns
// leads arriving on unregistered numbers.
func Migrate(ctx context.Context, db *sqlx.DB, defaultTenantEmail string) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}

	if _, err := db.ExecContext(ctx, seedDefaultTenant, entity.DefaultTenantID, defaultTenantEmail, entity.UnclaimedPasswordHash); err != nil {
		return fmt.Errorf("failed to seed default tenant: %w", err)
	}
	return nil
}
