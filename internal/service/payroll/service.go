package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/fieldworks/attendance-bot-go/internal/domain/incentive"
	"github.com/fieldworks/attendance-bot-go/internal/domain/ledger"
	"github.com/fieldworks/attendance-bot-go/internal/domain/payroll"
	"github.com/fieldworks/attendance-bot-go/internal/domain/progression"
	"github.com/fieldworks/attendance-bot-go/internal/domain/roster"
)

// batchConcurrency caps the number of workers settled at once; each worker
// costs a handful of full-sheet reads.
const batchConcurrency = 4

type PayrollServiceImpl struct {
	ledger.LedgerRepository
	roster.RosterRepository
	incentive.IncentiveRepository
}

func NewPayrollService(
	ledgerRepo ledger.LedgerRepository,
	rosterRepo roster.RosterRepository,
	incentiveRepo incentive.IncentiveRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		LedgerRepository:    ledgerRepo,
		RosterRepository:    rosterRepo,
		IncentiveRepository: incentiveRepo,
	}
}

// MonthlyPayrollFor implements payroll.PayrollService.
func (s *PayrollServiceImpl) MonthlyPayrollFor(ctx context.Context, worker roster.Worker, year, month int) (payroll.MonthlyPayroll, error) {
	dates, err := s.LedgerRepository.QualifyingWorkDatesInMonth(ctx, worker.CanonicalName, year, month)
	if err != nil {
		return payroll.MonthlyPayroll{}, err
	}
	if len(dates) == 0 {
		return payroll.MonthlyPayroll{}, payroll.ErrNoWorkRecords
	}

	before, err := s.LedgerRepository.CountQualifyingWorkDaysBeforeMonth(ctx, worker.CanonicalName, year, month)
	if err != nil {
		return payroll.MonthlyPayroll{}, err
	}
	previousDays := worker.BaseWorkDays + before

	// Each date is priced at the rate of its own cumulative tenure
	// position, so a tier boundary mid-month splits the month's pay.
	basePay := decimal.Zero
	breakdown := make([]payroll.DailyPayLine, 0, len(dates))
	for i, date := range dates {
		cumulative := previousDays + i + 1
		amount := progression.RateFor(cumulative)
		basePay = basePay.Add(amount)
		breakdown = append(breakdown, payroll.DailyPayLine{
			Date:           date,
			CumulativeDays: cumulative,
			Amount:         amount,
		})
	}

	entries, err := s.IncentiveRepository.MonthlyEntries(ctx, worker.CanonicalName, year, month)
	if err != nil {
		return payroll.MonthlyPayroll{}, fmt.Errorf("failed to read commission: %w", err)
	}
	commission := decimal.Zero
	incentives := make([]payroll.IncentiveLine, 0, len(entries))
	for _, entry := range entries {
		commission = commission.Add(entry.Amount)
		incentives = append(incentives, payroll.IncentiveLine{
			Date:        entry.Date,
			Amount:      entry.Amount,
			Description: entry.Description,
		})
	}

	transportation := payroll.TransportationRate.Mul(decimal.NewFromInt(int64(len(dates))))

	return payroll.MonthlyPayroll{
		WorkerName:     worker.CanonicalName,
		RosterKey:      worker.RosterKey,
		Year:           year,
		Month:          month,
		WorkDays:       len(dates),
		BasePay:        basePay,
		Commission:     commission,
		Transportation: transportation,
		TotalPay:       basePay.Add(commission).Add(transportation),
		Breakdown:      breakdown,
		Incentives:     incentives,
	}, nil
}

// MonthlyPayrollByIdentity implements payroll.PayrollService.
func (s *PayrollServiceImpl) MonthlyPayrollByIdentity(ctx context.Context, identityKey string, year, month int) (payroll.MonthlyPayroll, error) {
	worker, err := s.RosterRepository.Resolve(ctx, identityKey)
	if err != nil {
		return payroll.MonthlyPayroll{}, err
	}
	return s.MonthlyPayrollFor(ctx, worker, year, month)
}

// PayrollForAllWorkers implements payroll.PayrollService.
func (s *PayrollServiceImpl) PayrollForAllWorkers(ctx context.Context, year, month int) (payroll.BatchResult, error) {
	workers, err := s.RosterRepository.ListAll(ctx)
	if err != nil {
		return payroll.BatchResult{}, fmt.Errorf("failed to list workers: %w", err)
	}

	// Indexed slots keep roster order without a lock; empty slots are
	// compacted afterwards.
	payrolls := make([]*payroll.MonthlyPayroll, len(workers))
	failures := make([]*payroll.Failure, len(workers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, worker := range workers {
		i, worker := i, worker
		g.Go(func() error {
			result, err := s.MonthlyPayrollFor(gctx, worker, year, month)
			if err != nil {
				// Zero work-days is not a failure, the worker just sat
				// this month out.
				if errors.Is(err, payroll.ErrNoWorkRecords) {
					return nil
				}
				failures[i] = &payroll.Failure{
					WorkerName: worker.CanonicalName,
					Reason:     err.Error(),
				}
				return nil
			}
			payrolls[i] = &result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return payroll.BatchResult{}, err
	}

	batch := payroll.BatchResult{BatchID: uuid.NewString(), Year: year, Month: month}
	for i := range workers {
		if payrolls[i] != nil {
			batch.Payrolls = append(batch.Payrolls, *payrolls[i])
		}
		if failures[i] != nil {
			batch.Failures = append(batch.Failures, *failures[i])
		}
	}
	return batch, nil
}
