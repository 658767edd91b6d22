package sheetdb

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldworks/attendance-bot-go/internal/pkg/rowstore"
)

func incentiveFixture(t *testing.T) *rowstore.MemoryStore {
	t.Helper()
	store := rowstore.NewMemoryStore()
	store.Seed(SheetIncentive,
		rowstore.Row{"날짜", "이름", "금액", "내용"},
		rowstore.Row{"2026-08-05", "김철수", "50000", "우천 작업"},
		rowstore.Row{"2026-08-20", "김철수", "30,000", "야간 마감"},
		rowstore.Row{"2026-08-12", "이영희", "20000", ""},
		rowstore.Row{"2026-07-15", "김철수", "99000", "지난달 분"},
		rowstore.Row{"2026-08-25", "김철수", "만원", "금액이 깨진 행"},
	)
	return store
}

func TestIncentiveRepositoryMonthlyEntriesFilters(t *testing.T) {
	repo := NewIncentiveRepository(incentiveFixture(t), testTimeout)

	entries, err := repo.MonthlyEntries(context.Background(), "김철수", 2026, 8)
	require.NoError(t, err)

	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.Amount)
	}
	assert.Equal(t, int64(80000), total.IntPart(), "other months, workers, and unparseable rows are excluded")
}

func TestIncentiveRepositoryMonthlyEntriesEmptyMonth(t *testing.T) {
	repo := NewIncentiveRepository(incentiveFixture(t), testTimeout)

	entries, err := repo.MonthlyEntries(context.Background(), "김철수", 2026, 6)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestIncentiveRepositoryMonthlyEntries(t *testing.T) {
	repo := NewIncentiveRepository(incentiveFixture(t), testTimeout)

	entries, err := repo.MonthlyEntries(context.Background(), "김철수", 2026, 8)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Sheet order is preserved.
	assert.Equal(t, "2026-08-05", entries[0].Date)
	assert.Equal(t, "우천 작업", entries[0].Description)
	assert.Equal(t, int64(30000), entries[1].Amount.IntPart(), "thousand separators are tolerated")
}
