// Package rowstore abstracts the append-mostly spreadsheet that backs the
// attendance ledger, roster, incentive, and material sheets.
//
// The store exposes exactly three operations: append a row, read every row
// of a sheet, and overwrite a single cell. No server-side filtering is
// assumed; callers filter in memory after ReadAllRows.
package rowstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Row is one positional sheet row. Rows may be shorter than the sheet's
// column count; readers must tolerate short rows.
type Row []string

// Store is the external row store contract.
type Store interface {
	AppendRow(ctx context.Context, sheet string, row Row) error
	ReadAllRows(ctx context.Context, sheet string) ([]Row, error)
	// UpdateCell overwrites one cell addressed A1-style, e.g. "F12".
	UpdateCell(ctx context.Context, sheet string, cellRef string, value string) error
}

// Col returns the idx-th column of the row, or "" when the row is short.
func (r Row) Col(idx int) string {
	if idx < 0 || idx >= len(r) {
		return ""
	}
	return r[idx]
}

// TransientError marks a store failure worth retrying (network, quota,
// rate limit, server errors). Validation failures are never wrapped in it.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient store error: %v", e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// IsTransient reports whether err is (or wraps) a TransientError.
func IsTransient(err error) bool {
	var t *TransientError
	return errors.As(err, &t)
}

// ParseCellRef splits an A1-style reference into a 1-based column number
// and 1-based row number. "F12" → (6, 12).
func ParseCellRef(ref string) (col int, row int, err error) {
	ref = strings.TrimSpace(strings.ToUpper(ref))
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		col = col*26 + int(ref[i]-'A'+1)
		i++
	}
	if i == 0 || i == len(ref) {
		return 0, 0, fmt.Errorf("invalid cell reference %q", ref)
	}
	row, err = strconv.Atoi(ref[i:])
	if err != nil || row < 1 {
		return 0, 0, fmt.Errorf("invalid cell reference %q", ref)
	}
	return col, row, nil
}
