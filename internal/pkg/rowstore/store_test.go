package rowstore

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCellRef(t *testing.T) {
	cases := []struct {
		ref  string
		col  int
		row  int
		fail bool
	}{
		{"A1", 1, 1, false},
		{"F12", 6, 12, false},
		{"d4", 4, 4, false},
		{"AA10", 27, 10, false},
		{" B2 ", 2, 2, false},
		{"", 0, 0, true},
		{"12", 0, 0, true},
		{"A", 0, 0, true},
		{"A0", 0, 0, true},
		{"A-1", 0, 0, true},
	}
	for _, c := range cases {
		col, row, err := ParseCellRef(c.ref)
		if c.fail {
			assert.Error(t, err, "ParseCellRef(%q)", c.ref)
			continue
		}
		require.NoError(t, err, "ParseCellRef(%q)", c.ref)
		assert.Equal(t, c.col, col, "column of %q", c.ref)
		assert.Equal(t, c.row, row, "row of %q", c.ref)
	}
}

func TestRowCol(t *testing.T) {
	row := Row{"a", "b"}
	assert.Equal(t, "a", row.Col(0))
	assert.Equal(t, "b", row.Col(1))
	assert.Equal(t, "", row.Col(2), "short rows read as empty cells")
	assert.Equal(t, "", row.Col(-1))
}

func TestIsTransient(t *testing.T) {
	base := errors.New("connection reset")
	transient := &TransientError{Err: base}

	assert.True(t, IsTransient(transient))
	assert.True(t, IsTransient(fmt.Errorf("append: %w", transient)))
	assert.False(t, IsTransient(base))
	assert.False(t, IsTransient(nil))
	assert.ErrorIs(t, transient, base, "TransientError must unwrap to its cause")
}

func TestMemoryStoreAppendAndRead(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.AppendRow(ctx, "AttendanceLog", Row{"2026-08-01", "김철수"}))
	require.NoError(t, store.AppendRow(ctx, "AttendanceLog", Row{"2026-08-02", "김철수"}))

	rows, err := store.ReadAllRows(ctx, "AttendanceLog")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-08-01", rows[0].Col(0))

	// Sheets are independent.
	other, err := store.ReadAllRows(ctx, "UserMaster")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMemoryStoreUpdateCell(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Seed("MaterialOrder",
		Row{"날짜시간", "이름", "발주내용", "처리시간"},
		Row{"2026-08-01 09:00:00", "김철수", "백시멘트 2포"},
	)

	require.NoError(t, store.UpdateCell(ctx, "MaterialOrder", "D2", "2026-08-29 18:00:00"))

	rows, err := store.ReadAllRows(ctx, "MaterialOrder")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-29 18:00:00", rows[1].Col(3), "short row is padded to the target column")

	assert.Error(t, store.UpdateCell(ctx, "MaterialOrder", "D99", "x"), "out-of-range row")
}

func TestMemoryStoreFailNext(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	boom := &TransientError{Err: errors.New("quota exceeded")}
	store.FailNext(boom)

	_, err := store.ReadAllRows(ctx, "AttendanceLog")
	require.Error(t, err)
	assert.True(t, IsTransient(err))

	// The failure is consumed; the next call succeeds.
	_, err = store.ReadAllRows(ctx, "AttendanceLog")
	assert.NoError(t, err)
}
