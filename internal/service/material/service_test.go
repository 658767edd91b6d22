package material

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldworks/attendance-bot-go/internal/domain/material"
	"github.com/fieldworks/attendance-bot-go/internal/pkg/rowstore"
	"github.com/fieldworks/attendance-bot-go/internal/repository/sheetdb"
)

var kst = time.FixedZone("KST", 9*60*60)

func newTestService(t *testing.T, store *rowstore.MemoryStore) *MaterialServiceImpl {
	t.Helper()
	require.NoError(t, sheetdb.EnsureHeaders(context.Background(), store))
	store.Seed(sheetdb.SheetUserMaster,
		rowstore.Row{"이름", "Slack_ID", "기존근무일수", "비고1", "비고2", "주소"},
		rowstore.Row{"김철수", "U01ABCDEF", "44"},
	)
	return &MaterialServiceImpl{
		MaterialRepository: sheetdb.NewMaterialRepository(store, 5*time.Second),
		RosterRepository:   sheetdb.NewRosterRepository(store, 5*time.Second),
		loc:                kst,
		now:                func() time.Time { return time.Date(2026, 8, 29, 14, 30, 0, 0, kst) },
	}
}

func TestRecordUsageResolvesCanonicalName(t *testing.T) {
	store := rowstore.NewMemoryStore()
	svc := newTestService(t, store)

	err := svc.RecordUsage(context.Background(), material.RecordUsageRequest{
		IdentityKey: "U01ABCDEF",
		Room:        "안방 욕실",
		Color:       "C-103",
		Quantity:    2.5,
	})
	require.NoError(t, err)

	rows, err := store.ReadAllRows(context.Background(), sheetdb.SheetMaterialLog)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, rowstore.Row{"2026-08-29 14:30:00", "김철수", "안방 욕실", "C-103", "2.5"}, rows[1])
}

func TestRecordUsageValidation(t *testing.T) {
	store := rowstore.NewMemoryStore()
	svc := newTestService(t, store)

	err := svc.RecordUsage(context.Background(), material.RecordUsageRequest{
		IdentityKey: "U01ABCDEF",
		Room:        "안방 욕실",
		Color:       "C-103",
		Quantity:    0,
	})
	require.Error(t, err, "zero quantity is rejected")

	rows, readErr := store.ReadAllRows(context.Background(), sheetdb.SheetMaterialLog)
	require.NoError(t, readErr)
	assert.Len(t, rows, 1)
}

func TestRecordOrderUnknownWorkerKeepsRawKey(t *testing.T) {
	store := rowstore.NewMemoryStore()
	svc := newTestService(t, store)

	err := svc.RecordOrder(context.Background(), material.RecordOrderRequest{
		IdentityKey: "외부인력",
		OrderText:   "백시멘트 2포",
	})
	require.NoError(t, err)

	rows, err := store.ReadAllRows(context.Background(), sheetdb.SheetMaterialOrder)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "외부인력", rows[1].Col(1))
}

func TestPendingOrdersDefaultsToCurrentMonth(t *testing.T) {
	store := rowstore.NewMemoryStore()
	svc := newTestService(t, store)
	store.Seed(sheetdb.SheetMaterialOrder,
		rowstore.Row{"날짜시간", "이름", "발주내용", "처리시간"},
		rowstore.Row{"2026-08-02 09:00:00", "김철수", "이번달 발주"},
		rowstore.Row{"2026-07-02 09:00:00", "김철수", "지난달 발주"},
	)

	orders, err := svc.PendingOrders(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "이번달 발주", orders[0].OrderText)

	orders, err = svc.PendingOrders(context.Background(), "2026-07")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "지난달 발주", orders[0].OrderText)

	_, err = svc.PendingOrders(context.Background(), "bad-period")
	assert.Error(t, err)
}

func TestCompleteOrders(t *testing.T) {
	store := rowstore.NewMemoryStore()
	svc := newTestService(t, store)
	store.Seed(sheetdb.SheetMaterialOrder,
		rowstore.Row{"날짜시간", "이름", "발주내용", "처리시간"},
		rowstore.Row{"2026-08-02 09:00:00", "김철수", "백시멘트 2포"},
	)

	count, err := svc.CompleteOrders(context.Background(), material.CompleteOrdersRequest{RowNumbers: []int{2}})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	rows, err := store.ReadAllRows(context.Background(), sheetdb.SheetMaterialOrder)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-29 14:30:00", rows[1].Col(3))
}

func TestCompleteOrdersRejectsHeaderRow(t *testing.T) {
	store := rowstore.NewMemoryStore()
	svc := newTestService(t, store)

	_, err := svc.CompleteOrders(context.Background(), material.CompleteOrdersRequest{RowNumbers: []int{1}})
	assert.Error(t, err, "row 1 is the header")
}
