package sheetdb

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fieldworks/attendance-bot-go/internal/domain/ledger"
	"github.com/fieldworks/attendance-bot-go/internal/pkg/rowstore"
)

// AttendanceLog columns: A date, B name, C time, D kind, E location.
const (
	attColDate = iota
	attColName
	attColTime
	attColKind
	attColLocation
)

type ledgerRepository struct {
	client
}

// NewLedgerRepository builds the attendance-log repository over the store.
func NewLedgerRepository(store rowstore.Store, callTimeout time.Duration) ledger.LedgerRepository {
	return &ledgerRepository{client: newClient(store, callTimeout)}
}

// AppendCheckIn implements ledger.LedgerRepository.
func (r *ledgerRepository) AppendCheckIn(ctx context.Context, workerName string, at time.Time, location string) error {
	row := rowstore.Row{
		at.Format(DateLayout),
		workerName,
		at.Format(TimeLayout),
		string(ledger.KindCheckIn),
		location,
	}
	if err := r.appendRow(ctx, SheetAttendanceLog, row); err != nil {
		return fmt.Errorf("%w: %w", ledger.ErrWriteFailed, err)
	}
	return nil
}

// AppendCheckOut implements ledger.LedgerRepository.
func (r *ledgerRepository) AppendCheckOut(ctx context.Context, workerName string, at time.Time) error {
	row := rowstore.Row{
		at.Format(DateLayout),
		workerName,
		at.Format(TimeLayout),
		string(ledger.KindCheckOut),
	}
	if err := r.appendRow(ctx, SheetAttendanceLog, row); err != nil {
		return fmt.Errorf("%w: %w", ledger.ErrWriteFailed, err)
	}
	return nil
}

// CountQualifyingWorkDays implements ledger.LedgerRepository.
func (r *ledgerRepository) CountQualifyingWorkDays(ctx context.Context, workerName string) (int, error) {
	records, err := r.recordsFor(ctx, workerName)
	if err != nil {
		return 0, err
	}
	return len(ledger.QualifyingDates(records)), nil
}

// CountQualifyingWorkDaysBeforeMonth implements ledger.LedgerRepository.
func (r *ledgerRepository) CountQualifyingWorkDaysBeforeMonth(ctx context.Context, workerName string, year, month int) (int, error) {
	records, err := r.recordsFor(ctx, workerName)
	if err != nil {
		return 0, err
	}

	// Lexicographic compare against the "YYYY-MM" prefix keeps every date
	// of earlier months strictly below it and every date of the month (and
	// later) strictly above.
	prefix := monthPrefix(year, month)
	count := 0
	for _, date := range ledger.QualifyingDates(records) {
		if date < prefix {
			count++
		}
	}
	return count, nil
}

// QualifyingWorkDatesInMonth implements ledger.LedgerRepository.
func (r *ledgerRepository) QualifyingWorkDatesInMonth(ctx context.Context, workerName string, year, month int) ([]string, error) {
	records, err := r.recordsFor(ctx, workerName)
	if err != nil {
		return nil, err
	}

	prefix := monthPrefix(year, month)
	var dates []string
	for _, date := range ledger.QualifyingDates(records) {
		if strings.HasPrefix(date, prefix) {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	return dates, nil
}

// recordsFor reads the whole log and keeps the worker's well-formed rows.
// Rows missing the date, name, or kind column are skipped.
func (r *ledgerRepository) recordsFor(ctx context.Context, workerName string) ([]ledger.AttendanceRecord, error) {
	rows, err := r.readAllRows(ctx, SheetAttendanceLog)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ledger.ErrReadFailed, err)
	}

	var records []ledger.AttendanceRecord
	for _, row := range dataRows(rows) {
		if row.Col(attColName) != workerName {
			continue
		}
		if row.Col(attColDate) == "" || row.Col(attColKind) == "" {
			continue
		}
		records = append(records, ledger.AttendanceRecord{
			Date:       row.Col(attColDate),
			WorkerName: row.Col(attColName),
			Time:       row.Col(attColTime),
			Kind:       ledger.RecordKind(row.Col(attColKind)),
			Location:   row.Col(attColLocation),
		})
	}
	return records, nil
}
