package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent cannot express in schema definitions.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one running session per project. The orchestrator's admission
	// gate is the primary guard; this index is the backstop against races.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_agent_sessions_one_running
		ON agent_sessions (project_id) WHERE status = 'running'`)
	if err != nil {
		return fmt.Errorf("failed to create running-session index: %w", err)
	}

	// At most one active prompt version per file.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_prompt_versions_one_active
		ON prompt_versions (prompt_file) WHERE active`)
	if err != nil {
		return fmt.Errorf("failed to create active-version index: %w", err)
	}

	return nil
}
