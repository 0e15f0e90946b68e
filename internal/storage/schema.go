package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

func Migrate(ctx context.Context, db *sqlx.DB) error {
	stmts := []string{
		// App state lives in a key-value table of JSON-encoded strings.
		// This mirrors how the mobile builds persisted state and keeps
		// the engine decoupled from any particular schema.
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS point_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			type TEXT NOT NULL,
			category TEXT NOT NULL,
			amount INTEGER NOT NULL,
			description TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_point_history_created_at ON point_history(created_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
