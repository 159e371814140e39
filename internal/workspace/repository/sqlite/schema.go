package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"productivity-assistant/internal/workspace/repository"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL,
		organization_id TEXT NOT NULL DEFAULT '',
		title           TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		due_date        TEXT,
		due_time        TEXT,
		priority        TEXT NOT NULL,
		status          TEXT NOT NULL,
		created_at      INTEGER NOT NULL,
		completed_at    INTEGER
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_owner_due ON tasks (user_id, organization_id, due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_owner_status ON tasks (user_id, organization_id, status)`,
	`CREATE TABLE IF NOT EXISTS events (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL,
		organization_id TEXT NOT NULL DEFAULT '',
		title           TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		starts_at       INTEGER NOT NULL,
		ends_at         INTEGER NOT NULL,
		calendar_link   TEXT NOT NULL DEFAULT '',
		created_at      INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS goals (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL,
		organization_id TEXT NOT NULL DEFAULT '',
		title           TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		target_date     TEXT,
		created_at      INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL,
		organization_id TEXT NOT NULL DEFAULT '',
		title           TEXT NOT NULL DEFAULT '',
		content         TEXT NOT NULL DEFAULT '',
		created_at      INTEGER NOT NULL
	)`,
}

// Migrate creates the workspace tables. It is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToMigrate, err)
	}
	defer tx.Rollback()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %v", repository.ErrFailedToMigrate, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToMigrate, err)
	}
	return nil
}
