package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/fieldworks/attendance-bot-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	IdentityKey string `json:"identity_key"`
	DisplayName string `json:"display_name"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.IdentityKey) && validator.IsEmpty(r.DisplayName) {
		errs = append(errs, validator.ValidationError{
			Field:   "identity_key",
			Message: "identity_key or display_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	IdentityKey string `json:"identity_key"`
	DisplayName string `json:"display_name"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.IdentityKey) && validator.IsEmpty(r.DisplayName) {
		errs = append(errs, validator.ValidationError{
			Field:   "identity_key",
			Message: "identity_key or display_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// StageStatus summarizes the awakening band and progress toward the next.
type StageStatus struct {
	Index      int    `json:"index"`
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	Percent    int    `json:"percent"`
	Bar        string `json:"bar"`
	DaysToNext int    `json:"days_to_next"`
	NextAtDays *int   `json:"next_at_days,omitempty"`
}

// CheckInResponse is the structured outcome the transport renders into the
// morning message.
type CheckInResponse struct {
	WorkerName          string          `json:"worker_name"`
	DisplayName         string          `json:"display_name"`
	RosterMatched       bool            `json:"roster_matched"`
	Location            string          `json:"location,omitempty"`
	TotalWorkDays       int             `json:"total_work_days"`
	MonthlyWorkDays     int             `json:"monthly_work_days"`
	Level               int             `json:"level"`
	Title               string          `json:"title"`
	Stage               StageStatus     `json:"stage"`
	DaysUntilSettlement int             `json:"days_until_settlement"`
	MonthlyPayToDate    decimal.Decimal `json:"monthly_pay_to_date"`
}

// CheckOutResponse is the structured outcome of a check-out, including the
// progression transitions detected for this event.
type CheckOutResponse struct {
	WorkerName    string          `json:"worker_name"`
	DisplayName   string          `json:"display_name"`
	RosterMatched bool            `json:"roster_matched"`
	TotalWorkDays int             `json:"total_work_days"`
	DailyPay      decimal.Decimal `json:"daily_pay"`
	Level         int             `json:"level"`
	Title         string          `json:"title"`
	Stage         StageStatus     `json:"stage"`

	LeveledUp bool `json:"leveled_up"`
	NewLevel  int  `json:"new_level"`
	OldLevel  int  `json:"old_level"`

	StageCrossed      bool   `json:"stage_crossed"`
	CrossedStageIndex int    `json:"crossed_stage_index,omitempty"`
	UnlockedSkill     string `json:"unlocked_skill,omitempty"`
}
