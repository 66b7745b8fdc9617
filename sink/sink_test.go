// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sink

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/likert-collect/db"
)

func sampleRows() [][]string {
	return [][]string{
		{"2026-08-28T14:30:05", "1A2B3C4D", "Maria", "Acme", "Alpha", "a one", "3", "3"},
		{"2026-08-28T14:30:05", "1A2B3C4D", "Maria", "Acme", "Beta", "b one", "N/A", "N/A"},
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory()

	if err := m.AppendRows(context.Background(), sampleRows()); err != nil {
		t.Fatalf("AppendRows() error = %v", err)
	}
	if err := m.AppendRows(context.Background(), sampleRows()[:1]); err != nil {
		t.Fatalf("AppendRows() error = %v", err)
	}

	if got := len(m.Batches()); got != 2 {
		t.Errorf("got %d batches, want 2", got)
	}
	if got := len(m.Rows()); got != 3 {
		t.Errorf("got %d rows, want 3", got)
	}

	failure := errors.New("sink down")
	m.FailWith(failure)
	if err := m.AppendRows(context.Background(), sampleRows()); !errors.Is(err, failure) {
		t.Errorf("AppendRows() error = %v, want injected failure", err)
	}
	if got := len(m.Batches()); got != 2 {
		t.Errorf("failed append still recorded a batch")
	}
}

func TestCSV_AppendsBatches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submissions.csv")
	s := NewCSV(path)

	if err := s.AppendRows(context.Background(), sampleRows()); err != nil {
		t.Fatalf("AppendRows() error = %v", err)
	}
	if err := s.AppendRows(context.Background(), sampleRows()[:1]); err != nil {
		t.Fatalf("AppendRows() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open sink file: %v", err)
	}
	defer f.Close()

	got, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to read sink file back: %v", err)
	}

	want := append(sampleRows(), sampleRows()[0])
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sink rows mismatch (-want +got):\n%s", diff)
	}
}

func setupSinkDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", "file:"+filepath.Join(t.TempDir(), "sink.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return conn
}

func countRows(t *testing.T, conn *sql.DB) int {
	t.Helper()
	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM submission_row`).Scan(&n); err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return n
}

func TestDB_AppendRows(t *testing.T) {
	conn := setupSinkDB(t)
	s := NewDB(conn)

	if err := s.AppendRows(context.Background(), sampleRows()); err != nil {
		t.Fatalf("AppendRows() error = %v", err)
	}

	if got := countRows(t, conn); got != 2 {
		t.Errorf("got %d rows, want 2", got)
	}

	var raw, score string
	err := conn.QueryRow(`
		SELECT raw_value, score FROM submission_row WHERE dimension = $1
	`, "Beta").Scan(&raw, &score)
	if err != nil {
		t.Fatalf("failed to query row back: %v", err)
	}
	if raw != "N/A" || score != "N/A" {
		t.Errorf("raw/score = %q/%q, want N/A markers", raw, score)
	}
}

func TestDB_BatchIsAtomic(t *testing.T) {
	conn := setupSinkDB(t)
	s := NewDB(conn)

	// Second row is malformed: the whole batch must be rolled back.
	batch := [][]string{
		sampleRows()[0],
		{"only", "seven", "columns", "in", "this", "bad", "row"},
	}
	if err := s.AppendRows(context.Background(), batch); err == nil {
		t.Fatal("AppendRows() succeeded with a malformed row")
	}

	if got := countRows(t, conn); got != 0 {
		t.Errorf("got %d rows after failed batch, want 0", got)
	}
}
