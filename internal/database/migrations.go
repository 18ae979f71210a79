package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// migrations are applied in order; the index+1 of each entry is its schema version.
// Never edit an applied entry, append a new one instead.
var migrations = []string{
	`
	CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL COLLATE NOCASE,
		description TEXT NOT NULL DEFAULT '',
		start_date TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_name ON projects(name COLLATE NOCASE);
	CREATE INDEX IF NOT EXISTS idx_projects_created_at ON projects(created_at);

	CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		is_activity INTEGER NOT NULL DEFAULT 0,
		duration INTEGER NOT NULL,
		start_at TEXT NOT NULL,
		end_at TEXT NOT NULL,
		start_day INTEGER NOT NULL,
		end_day INTEGER NOT NULL,
		color TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		CHECK (end_day >= start_day),
		FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_tasks_project_end_at ON tasks(project_id, end_at);

	CREATE TABLE IF NOT EXISTS tags (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		is_activity INTEGER NOT NULL DEFAULT 0,
		duration INTEGER NOT NULL,
		start_at TEXT NOT NULL,
		end_at TEXT NOT NULL,
		start_day INTEGER NOT NULL,
		end_day INTEGER NOT NULL,
		color TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		CHECK (end_day >= start_day),
		FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_tags_project_end_at ON tags(project_id, end_at);

	CREATE TABLE IF NOT EXISTS notes (
		id TEXT PRIMARY KEY,
		project_id TEXT,
		task_id TEXT,
		body TEXT NOT NULL,
		created_at TEXT NOT NULL,
		CHECK ((project_id IS NULL) <> (task_id IS NULL)),
		FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE,
		FOREIGN KEY (task_id) REFERENCES tasks(id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_notes_project ON notes(project_id, created_at);
	CREATE INDEX IF NOT EXISTS idx_notes_task ON notes(task_id, created_at);

	CREATE TABLE IF NOT EXISTS actions (
		id TEXT PRIMARY KEY,
		task_id TEXT NOT NULL,
		details TEXT NOT NULL,
		day INTEGER NOT NULL CHECK (day >= 1),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		FOREIGN KEY (task_id) REFERENCES tasks(id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_actions_task_day ON actions(task_id, day);
	`,
	// NOCASE folds ASCII only; uniqueness moves to a Unicode-folded key
	`
	ALTER TABLE projects ADD COLUMN name_key TEXT;
	UPDATE projects SET name_key = fold(trim(name));
	DROP INDEX IF EXISTS idx_projects_name;
	CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_name_key ON projects(name_key);
	`,
}

// Migrate brings the schema to the latest version. It is safe to call on every start.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY, applied_at TEXT NOT NULL)`,
	); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	var current int
	if err := db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for i := current; i < len(migrations); i++ {
		version := i + 1
		err := withTx(ctx, db, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, migrations[i]); err != nil {
				return fmt.Errorf("migration %d: %w", version, err)
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)`,
				version, formatTime(timeNow()),
			)
			return err
		})
		if err != nil {
			return err
		}
		slog.Info("applied migration", "version", version)
	}

	return nil
}

// SchemaVersion reports the highest applied migration
func SchemaVersion(ctx context.Context, db *sql.DB) (int, error) {
	var version int
	err := db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	return version, err
}
