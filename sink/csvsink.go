// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sync"
)

// CSV appends submission rows to a local file. The mutex serializes batches
// from concurrent submissions; each batch is written and flushed as one unit.
type CSV struct {
	mu   sync.Mutex
	path string
}

func NewCSV(path string) *CSV {
	return &CSV{path: path}
}

func (s *CSV) AppendRows(_ context.Context, rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open sink file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil { // WriteAll flushes
		f.Close()
		return fmt.Errorf("failed to write sink rows: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close sink file: %w", err)
	}
	return nil
}
