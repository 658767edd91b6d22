package material

import (
	"github.com/fieldworks/attendance-bot-go/internal/pkg/validator"
)

// ========================================
// MATERIAL DTOs
// ========================================

type RecordUsageRequest struct {
	IdentityKey string  `json:"identity_key"`
	Room        string  `json:"room"`
	Color       string  `json:"color"`
	Quantity    float64 `json:"quantity"`
}

func (r *RecordUsageRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.IdentityKey) {
		errs = append(errs, validator.ValidationError{
			Field:   "identity_key",
			Message: "identity_key is required",
		})
	}

	if validator.IsEmpty(r.Room) {
		errs = append(errs, validator.ValidationError{
			Field:   "room",
			Message: "room is required",
		})
	}

	if validator.IsEmpty(r.Color) {
		errs = append(errs, validator.ValidationError{
			Field:   "color",
			Message: "color is required",
		})
	}

	if r.Quantity <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordOrderRequest struct {
	IdentityKey string `json:"identity_key"`
	OrderText   string `json:"order_text"`
}

func (r *RecordOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.IdentityKey) {
		errs = append(errs, validator.ValidationError{
			Field:   "identity_key",
			Message: "identity_key is required",
		})
	}

	if validator.IsEmpty(r.OrderText) {
		errs = append(errs, validator.ValidationError{
			Field:   "order_text",
			Message: "order_text is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CompleteOrdersRequest struct {
	RowNumbers []int `json:"row_numbers"`
}

func (r *CompleteOrdersRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.RowNumbers) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "row_numbers",
			Message: "row_numbers is required",
		})
	}
	for _, n := range r.RowNumbers {
		if n < 2 { // row 1 is the header
			errs = append(errs, validator.ValidationError{
				Field:   "row_numbers",
				Message: "row_numbers must reference data rows (≥ 2)",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
