package ledger

import (
	"context"
	"time"
)

// LedgerRepository defines data access for the append-only attendance log.
// Writes never reject duplicates; the qualifying-day rule de-duplicates at
// date granularity. All methods wrap store calls in the retry policy and
// surface the last failure.
type LedgerRepository interface {
	// AppendCheckIn appends a check-in row, optionally annotated with the
	// site address of the day.
	AppendCheckIn(ctx context.Context, workerName string, at time.Time, location string) error

	// AppendCheckOut appends a check-out row.
	AppendCheckOut(ctx context.Context, workerName string, at time.Time) error

	// CountQualifyingWorkDays counts dates that carry both a check-in and
	// a check-out for the worker, over the whole log.
	CountQualifyingWorkDays(ctx context.Context, workerName string) (int, error)

	// CountQualifyingWorkDaysBeforeMonth counts qualifying dates strictly
	// before the given month.
	CountQualifyingWorkDaysBeforeMonth(ctx context.Context, workerName string, year, month int) (int, error)

	// QualifyingWorkDatesInMonth returns the qualifying dates whose string
	// prefix is the month, sorted ascending.
	QualifyingWorkDatesInMonth(ctx context.Context, workerName string, year, month int) ([]string, error)
}
