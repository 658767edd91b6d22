package incentive

import (
	"context"
)

// IncentiveRepository reads the incentive ledger. Rows with unparseable
// amounts are skipped, not fatal.
type IncentiveRepository interface {
	// MonthlyEntries lists the worker's incentive rows for the month in
	// sheet order; the commission total and pay-slip detail lines both
	// derive from it.
	MonthlyEntries(ctx context.Context, workerName string, year, month int) ([]Entry, error)
}
