// Package sheetdb implements the domain repositories on top of the row
// store. Every sheet is read whole and filtered in memory; writes are
// appends, except order completion which overwrites a single cell. All
// store calls run under the shared retry policy with a per-call timeout.
package sheetdb

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldworks/attendance-bot-go/internal/pkg/retry"
	"github.com/fieldworks/attendance-bot-go/internal/pkg/rowstore"
)

// Sheet names, fixed by the spreadsheet layout.
const (
	SheetAttendanceLog = "AttendanceLog"
	SheetUserMaster    = "UserMaster"
	SheetIncentive     = "Incentive"
	SheetMaterialLog   = "MaterialLog"
	SheetMaterialOrder = "MaterialOrder"
)

// Timestamp layouts used in sheet cells.
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04:05"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// client bundles the store with the retry policy and per-call timeout
// shared by every repository in this package.
type client struct {
	store       rowstore.Store
	retryCfg    retry.Config
	callTimeout time.Duration
}

func newClient(store rowstore.Store, callTimeout time.Duration) client {
	cfg := retry.DefaultConfig()
	cfg.ShouldRetry = rowstore.IsTransient
	if callTimeout <= 0 {
		callTimeout = 15 * time.Second
	}
	return client{store: store, retryCfg: cfg, callTimeout: callTimeout}
}

func (c client) appendRow(ctx context.Context, sheet string, row rowstore.Row) error {
	return retry.Do(ctx, c.retryCfg, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
		return c.store.AppendRow(ctx, sheet, row)
	})
}

func (c client) readAllRows(ctx context.Context, sheet string) ([]rowstore.Row, error) {
	return retry.DoVal(ctx, c.retryCfg, func(ctx context.Context) ([]rowstore.Row, error) {
		ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
		return c.store.ReadAllRows(ctx, sheet)
	})
}

func (c client) updateCell(ctx context.Context, sheet, cellRef, value string) error {
	return retry.Do(ctx, c.retryCfg, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
		return c.store.UpdateCell(ctx, sheet, cellRef, value)
	})
}

// sheetHeaders is the first row of every sheet. Row numbers in the rest of
// this package are 1-based with the header at row 1.
var sheetHeaders = map[string]rowstore.Row{
	SheetAttendanceLog: {"날짜", "이름", "시간", "구분", "현장주소"},
	SheetUserMaster:    {"이름", "Slack_ID", "기존근무일수", "비고1", "비고2", "주소"},
	SheetIncentive:     {"날짜", "이름", "금액", "내용"},
	SheetMaterialLog:   {"날짜시간", "이름", "방", "색상", "사용량"},
	SheetMaterialOrder: {"날짜시간", "이름", "발주내용", "처리시간"},
}

// EnsureHeaders appends the header row to every sheet that is still empty,
// so freshly provisioned backends share the row-1-is-header layout.
func EnsureHeaders(ctx context.Context, store rowstore.Store) error {
	for sheet, header := range sheetHeaders {
		rows, err := store.ReadAllRows(ctx, sheet)
		if err != nil {
			return fmt.Errorf("failed to inspect sheet %s: %w", sheet, err)
		}
		if len(rows) > 0 {
			continue
		}
		if err := store.AppendRow(ctx, sheet, header); err != nil {
			return fmt.Errorf("failed to write header for sheet %s: %w", sheet, err)
		}
	}
	return nil
}

// dataRows strips the header row. Sheets always carry one header row; a
// sheet with nothing but the header has no data.
func dataRows(rows []rowstore.Row) []rowstore.Row {
	if len(rows) < 2 {
		return nil
	}
	return rows[1:]
}

// monthPrefix renders the "YYYY-MM" prefix used for month filtering on
// date strings.
func monthPrefix(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}
