package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateJSONBIndexes creates GIN indexes over the JSONB payload columns.
// These enable containment queries against synthesized documents and agent
// payloads (e.g. filtering jobs by a synthesized field) without sequential
// scans. Ent schema definitions cannot express GIN indexes, so they are
// applied here after migrations.
func CreateJSONBIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_analysis_jobs_synthesized_gin
		ON analysis_jobs USING gin(synthesized_data jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create synthesized_data GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_agent_records_payload_gin
		ON agent_records USING gin(payload jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create agent payload GIN index: %w", err)
	}

	return nil
}
