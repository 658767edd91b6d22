package payroll

import (
	"context"

	"github.com/fieldworks/attendance-bot-go/internal/domain/roster"
)

// PayrollService computes monthly settlements.
type PayrollService interface {
	// MonthlyPayrollFor prices each qualifying work-date of the month at
	// the tier rate of its cumulative tenure position, then adds the
	// month's commission and the flat transportation allowance.
	MonthlyPayrollFor(ctx context.Context, worker roster.Worker, year, month int) (MonthlyPayroll, error)

	// MonthlyPayrollByIdentity resolves the identity against the roster
	// first, then settles that worker.
	MonthlyPayrollByIdentity(ctx context.Context, identityKey string, year, month int) (MonthlyPayroll, error)

	// PayrollForAllWorkers runs the whole roster. Workers without a
	// qualifying work-day in the month are skipped; a failing worker is
	// reported in the result without aborting the batch.
	PayrollForAllWorkers(ctx context.Context, year, month int) (BatchResult, error)
}
