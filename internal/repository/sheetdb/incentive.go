package sheetdb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fieldworks/attendance-bot-go/internal/domain/incentive"
	"github.com/fieldworks/attendance-bot-go/internal/pkg/rowstore"
)

// Incentive columns: A date, B name, C amount, D description.
const (
	incColDate = iota
	incColName
	incColAmount
	incColDescription
)

type incentiveRepository struct {
	client
}

// NewIncentiveRepository builds the incentive repository over the store.
func NewIncentiveRepository(store rowstore.Store, callTimeout time.Duration) incentive.IncentiveRepository {
	return &incentiveRepository{client: newClient(store, callTimeout)}
}

// MonthlyEntries implements incentive.IncentiveRepository.
func (r *incentiveRepository) MonthlyEntries(ctx context.Context, workerName string, year, month int) ([]incentive.Entry, error) {
	rows, err := r.readAllRows(ctx, SheetIncentive)
	if err != nil {
		return nil, fmt.Errorf("failed to read incentive sheet: %w", err)
	}

	prefix := monthPrefix(year, month)
	var entries []incentive.Entry
	for _, row := range dataRows(rows) {
		if row.Col(incColName) != workerName {
			continue
		}
		date := row.Col(incColDate)
		if !strings.HasPrefix(date, prefix) {
			continue
		}
		// Amounts may carry thousand separators; unparseable cells are
		// skipped rather than failing the whole month.
		raw := strings.ReplaceAll(row.Col(incColAmount), ",", "")
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}
		entries = append(entries, incentive.Entry{
			Date:        date,
			WorkerName:  workerName,
			Amount:      amount,
			Description: row.Col(incColDescription),
		})
	}
	return entries, nil
}
