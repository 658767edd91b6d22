package payroll

import (
	"github.com/fieldworks/attendance-bot-go/internal/pkg/validator"
)

// SettlementRequest selects the settlement period. An empty period means
// the current month.
type SettlementRequest struct {
	Period string `json:"period"` // YYYY-MM
}

func (r *SettlementRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.Period) {
		if _, _, err := validator.ParsePeriod(r.Period); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "period",
				Message: err.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
