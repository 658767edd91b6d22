package rowstore

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory Store used by tests and local development.
// It mirrors the sheet model: rows accumulate per sheet in append order.
type MemoryStore struct {
	mu     sync.Mutex
	sheets map[string][]Row

	// failures are returned (and consumed) before the real operation,
	// letting tests exercise the retry path.
	failures []error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sheets: make(map[string][]Row)}
}

// FailNext queues errors to be returned by upcoming calls, one per call.
func (m *MemoryStore) FailNext(errs ...error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, errs...)
}

func (m *MemoryStore) nextFailure() error {
	if len(m.failures) == 0 {
		return nil
	}
	err := m.failures[0]
	m.failures = m.failures[1:]
	return err
}

// Seed replaces the contents of a sheet, header row included.
func (m *MemoryStore) Seed(sheet string, rows ...Row) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sheets[sheet] = append([]Row(nil), rows...)
}

// AppendRow implements Store.
func (m *MemoryStore) AppendRow(_ context.Context, sheet string, row Row) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.nextFailure(); err != nil {
		return err
	}
	m.sheets[sheet] = append(m.sheets[sheet], append(Row(nil), row...))
	return nil
}

// ReadAllRows implements Store.
func (m *MemoryStore) ReadAllRows(_ context.Context, sheet string) ([]Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.nextFailure(); err != nil {
		return nil, err
	}
	rows := make([]Row, len(m.sheets[sheet]))
	for i, r := range m.sheets[sheet] {
		rows[i] = append(Row(nil), r...)
	}
	return rows, nil
}

// UpdateCell implements Store.
func (m *MemoryStore) UpdateCell(_ context.Context, sheet string, cellRef string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.nextFailure(); err != nil {
		return err
	}
	col, rowNum, err := ParseCellRef(cellRef)
	if err != nil {
		return err
	}
	rows := m.sheets[sheet]
	if rowNum > len(rows) {
		return fmt.Errorf("row %d of %s does not exist", rowNum, sheet)
	}
	row := rows[rowNum-1]
	for len(row) < col {
		row = append(row, "")
	}
	row[col-1] = value
	rows[rowNum-1] = row
	return nil
}
