// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the sink table. Safe to call multiple times - uses
// IF NOT EXISTS. The statements avoid engine-specific defaults so the same
// schema runs on postgres and sqlite.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Append-only sink for submission rows, one row per catalog item per
-- submission. raw_value and score hold "1".."5" or "N/A".
CREATE TABLE IF NOT EXISTS submission_row (
    submitted_at TEXT NOT NULL,
    org_id_hash TEXT NOT NULL,
    respondent TEXT NOT NULL,
    org_name TEXT NOT NULL,
    dimension TEXT NOT NULL,
    item_text TEXT NOT NULL,
    raw_value TEXT NOT NULL,
    score TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_submission_row_org ON submission_row(org_id_hash);
CREATE INDEX IF NOT EXISTS idx_submission_row_submitted_at ON submission_row(submitted_at);
`
