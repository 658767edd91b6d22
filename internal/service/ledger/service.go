package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fieldworks/attendance-bot-go/internal/domain/ledger"
	"github.com/fieldworks/attendance-bot-go/internal/domain/progression"
	"github.com/fieldworks/attendance-bot-go/internal/domain/roster"
)

type LedgerServiceImpl struct {
	ledger.LedgerRepository
	roster.RosterRepository

	loc         *time.Location
	siteAddress string
	now         func() time.Time
}

func NewLedgerService(
	ledgerRepo ledger.LedgerRepository,
	rosterRepo roster.RosterRepository,
	loc *time.Location,
	siteAddress string,
) ledger.LedgerService {
	return &LedgerServiceImpl{
		LedgerRepository: ledgerRepo,
		RosterRepository: rosterRepo,
		loc:              loc,
		siteAddress:      siteAddress,
		now:              time.Now,
	}
}

// CheckIn implements ledger.LedgerService.
func (s *LedgerServiceImpl) CheckIn(ctx context.Context, req ledger.CheckInRequest) (ledger.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.CheckInResponse{}, err
	}

	nowLocal := s.now().In(s.loc)
	worker, matched, err := s.resolveWorker(ctx, req.IdentityKey, req.DisplayName)
	if err != nil {
		return ledger.CheckInResponse{}, err
	}

	if err := s.LedgerRepository.AppendCheckIn(ctx, worker.CanonicalName, nowLocal, s.siteAddress); err != nil {
		return ledger.CheckInResponse{}, err
	}

	totalDays, err := s.tenure(ctx, worker)
	if err != nil {
		return ledger.CheckInResponse{}, err
	}

	monthDates, err := s.LedgerRepository.QualifyingWorkDatesInMonth(ctx, worker.CanonicalName, nowLocal.Year(), int(nowLocal.Month()))
	if err != nil {
		return ledger.CheckInResponse{}, err
	}

	monthlyPay, err := s.monthlyPayToDate(ctx, worker, nowLocal.Year(), int(nowLocal.Month()), monthDates)
	if err != nil {
		return ledger.CheckInResponse{}, err
	}

	level := progression.Level(totalDays)
	return ledger.CheckInResponse{
		WorkerName:          worker.CanonicalName,
		DisplayName:         displayName(req.DisplayName, worker),
		RosterMatched:       matched,
		Location:            s.siteAddress,
		TotalWorkDays:       totalDays,
		MonthlyWorkDays:     len(monthDates),
		Level:               level,
		Title:               progression.TitleForLevel(level),
		Stage:               stageStatus(totalDays),
		DaysUntilSettlement: daysUntilEndOfMonth(nowLocal),
		MonthlyPayToDate:    monthlyPay,
	}, nil
}

// CheckOut implements ledger.LedgerService.
func (s *LedgerServiceImpl) CheckOut(ctx context.Context, req ledger.CheckOutRequest) (ledger.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.CheckOutResponse{}, err
	}

	nowLocal := s.now().In(s.loc)
	worker, matched, err := s.resolveWorker(ctx, req.IdentityKey, req.DisplayName)
	if err != nil {
		return ledger.CheckOutResponse{}, err
	}

	// Tenure before and after the append; the delta drives transition
	// detection. A same-day check-in makes this check-out complete the day.
	previousDays, err := s.tenure(ctx, worker)
	if err != nil {
		return ledger.CheckOutResponse{}, err
	}

	if err := s.LedgerRepository.AppendCheckOut(ctx, worker.CanonicalName, nowLocal); err != nil {
		return ledger.CheckOutResponse{}, err
	}

	currentDays, err := s.tenure(ctx, worker)
	if err != nil {
		return ledger.CheckOutResponse{}, err
	}

	leveledUp, newLevel, oldLevel := progression.DetectLevelUp(currentDays, previousDays)
	crossed, stageIndex := progression.DetectStageCrossing(currentDays, previousDays)

	resp := ledger.CheckOutResponse{
		WorkerName:    worker.CanonicalName,
		DisplayName:   displayName(req.DisplayName, worker),
		RosterMatched: matched,
		TotalWorkDays: currentDays,
		DailyPay:      progression.RateFor(currentDays),
		Level:         progression.Level(currentDays),
		Title:         progression.TitleForDays(currentDays),
		Stage:         stageStatus(currentDays),
		LeveledUp:     leveledUp,
		NewLevel:      newLevel,
		OldLevel:      oldLevel,
		StageCrossed:  crossed,
	}
	if crossed {
		boundary := progression.Stages[stageIndex].MinDays
		resp.CrossedStageIndex = stageIndex
		resp.UnlockedSkill = progression.SkillForMilestone(boundary)
	}
	return resp, nil
}

// resolveWorker matches the request against the roster, trying the platform
// key first, then the display name. An unmatched worker still gets logged,
// keyed by whatever identity the request carried.
func (s *LedgerServiceImpl) resolveWorker(ctx context.Context, identityKey, name string) (roster.Worker, bool, error) {
	for _, key := range []string{identityKey, name} {
		if key == "" {
			continue
		}
		worker, err := s.RosterRepository.Resolve(ctx, key)
		if err == nil {
			return worker, true, nil
		}
		if !errors.Is(err, roster.ErrWorkerNotFound) {
			return roster.Worker{}, false, fmt.Errorf("failed to resolve worker: %w", err)
		}
	}

	fallback := name
	if fallback == "" {
		fallback = identityKey
	}
	return roster.Worker{CanonicalName: fallback}, false, nil
}

// tenure is base work days plus every qualifying date in the log.
func (s *LedgerServiceImpl) tenure(ctx context.Context, worker roster.Worker) (int, error) {
	logged, err := s.LedgerRepository.CountQualifyingWorkDays(ctx, worker.CanonicalName)
	if err != nil {
		return 0, err
	}
	return worker.BaseWorkDays + logged, nil
}

// monthlyPayToDate prices the month's qualifying dates at their cumulative
// tenure positions, same schedule the settlement uses.
func (s *LedgerServiceImpl) monthlyPayToDate(ctx context.Context, worker roster.Worker, year, month int, monthDates []string) (decimal.Decimal, error) {
	before, err := s.LedgerRepository.CountQualifyingWorkDaysBeforeMonth(ctx, worker.CanonicalName, year, month)
	if err != nil {
		return decimal.Zero, err
	}

	previousDays := worker.BaseWorkDays + before
	total := decimal.Zero
	for i := range monthDates {
		total = total.Add(progression.RateFor(previousDays + i + 1))
	}
	return total, nil
}

func displayName(requested string, worker roster.Worker) string {
	if requested != "" {
		return requested
	}
	return worker.CanonicalName
}

func stageStatus(totalDays int) ledger.StageStatus {
	stage := progression.StageFor(totalDays)
	percent, daysToNext, next := progression.StageProgress(totalDays)
	return ledger.StageStatus{
		Index:      stage.Index,
		Symbol:     stage.Symbol,
		Name:       stage.Name,
		Percent:    percent,
		Bar:        progression.ProgressBar(percent),
		DaysToNext: daysToNext,
		NextAtDays: next,
	}
}

// daysUntilEndOfMonth counts remaining days up to the settlement day, the
// last civil day of the month.
func daysUntilEndOfMonth(now time.Time) int {
	lastDay := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	return lastDay - now.Day()
}
