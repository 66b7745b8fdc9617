// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sink

import (
	"context"
	"database/sql"
	"fmt"
)

// RowColumns is the fixed width of a sink row.
const RowColumns = 8

// DB appends submission rows to a relational table. Works with both the
// postgres and sqlite drivers; $N placeholders bind ordinally on both.
// Batch atomicity comes from wrapping the whole append in one transaction.
type DB struct {
	db *sql.DB
}

func NewDB(db *sql.DB) *DB {
	return &DB{db: db}
}

func (s *DB) AppendRows(ctx context.Context, rows [][]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin sink transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO submission_row
			(submitted_at, org_id_hash, respondent, org_name, dimension, item_text, raw_value, score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare sink insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if len(row) != RowColumns {
			return fmt.Errorf("sink row %d has %d columns, want %d", i, len(row), RowColumns)
		}
		if _, err := stmt.ExecContext(ctx, row[0], row[1], row[2], row[3], row[4], row[5], row[6], row[7]); err != nil {
			return fmt.Errorf("failed to append sink row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sink batch: %w", err)
	}
	return nil
}
