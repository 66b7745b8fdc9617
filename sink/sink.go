// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sink

import (
	"context"
	"sync"
)

// Sink is an append-only destination for finalized submission rows.
//
// AppendRows must append the whole batch as one unit or report failure with
// nothing written; partial-row writes are not permitted. Implementations must
// be safe for concurrent use, since independent respondents submit
// concurrently and the core takes no lock of its own.
type Sink interface {
	AppendRows(ctx context.Context, rows [][]string) error
}

// Memory is an in-process Sink for tests and dry runs.
type Memory struct {
	mu      sync.Mutex
	batches [][][]string
	failErr error
}

func NewMemory() *Memory {
	return &Memory{}
}

// FailWith makes every subsequent append fail with err. Pass nil to recover.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failErr = err
}

func (m *Memory) AppendRows(_ context.Context, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	batch := make([][]string, len(rows))
	for i, row := range rows {
		batch[i] = append([]string(nil), row...)
	}
	m.batches = append(m.batches, batch)
	return nil
}

// Batches returns every appended batch, in order.
func (m *Memory) Batches() [][][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][][]string, len(m.batches))
	copy(out, m.batches)
	return out
}

// Rows returns all appended rows flattened across batches.
func (m *Memory) Rows() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out [][]string
	for _, b := range m.batches {
		out = append(out, b...)
	}
	return out
}
