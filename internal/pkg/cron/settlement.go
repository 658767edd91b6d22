package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fieldworks/attendance-bot-go/internal/domain/payroll"
	"github.com/fieldworks/attendance-bot-go/internal/pkg/email"
)

// settlementHour is the local hour of the settlement-day digest run.
const settlementHour = 18

type SettlementJobs struct {
	payrollSvc payroll.PayrollService
	emailSvc   email.EmailService
	digestTo   string
	loc        *time.Location
	now        func() time.Time

	lastSentPeriod string
}

func NewSettlementJobs(
	payrollSvc payroll.PayrollService,
	emailSvc email.EmailService,
	digestTo string,
	loc *time.Location,
) *SettlementJobs {
	return &SettlementJobs{
		payrollSvc: payrollSvc,
		emailSvc:   emailSvc,
		digestTo:   digestTo,
		loc:        loc,
		now:        time.Now,
	}
}

func (j *SettlementJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("settlement_digest", 30*time.Minute, j.SendSettlementDigest)
}

// SendSettlementDigest mails the operator the month's settlement table on
// the last day of the month, once per month. Skipped silently when no
// digest recipient is configured.
func (j *SettlementJobs) SendSettlementDigest(ctx context.Context) error {
	if j.digestTo == "" {
		return nil
	}

	nowLocal := j.now().In(j.loc)

	lastDay := time.Date(nowLocal.Year(), nowLocal.Month()+1, 0, 0, 0, 0, 0, j.loc).Day()
	if nowLocal.Day() != lastDay || nowLocal.Hour() < settlementHour {
		return nil
	}

	period := nowLocal.Format("2006-01")
	if j.lastSentPeriod == period {
		return nil
	}

	slog.Info("Cron: Running monthly settlement digest", "period", period)

	batch, err := j.payrollSvc.PayrollForAllWorkers(ctx, nowLocal.Year(), int(nowLocal.Month()))
	if err != nil {
		return fmt.Errorf("failed to run settlement batch: %w", err)
	}

	if err := j.emailSvc.SendSettlementDigest(j.digestTo, batch); err != nil {
		return fmt.Errorf("failed to send settlement digest: %w", err)
	}

	j.lastSentPeriod = period
	slog.Info("Cron: Settlement digest sent",
		"batch_id", batch.BatchID,
		"period", period,
		"workers", len(batch.Payrolls),
		"failures", len(batch.Failures),
	)
	return nil
}
