package response

import (
	"errors"
	"net/http"

	"github.com/fieldworks/attendance-bot-go/internal/domain/auth"
	"github.com/fieldworks/attendance-bot-go/internal/domain/ledger"
	"github.com/fieldworks/attendance-bot-go/internal/domain/payroll"
	"github.com/fieldworks/attendance-bot-go/internal/domain/roster"
	"github.com/fieldworks/attendance-bot-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Roster domain errors
	case errors.Is(err, roster.ErrWorkerNotFound):
		NotFound(w, "Worker not found in roster")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrNoWorkRecords):
		NotFound(w, "No work records for the requested month")

	// Store failures surface as upstream errors; the retry policy has
	// already run its course by the time they reach here.
	case errors.Is(err, ledger.ErrWriteFailed):
		BadGateway(w, "Failed to write attendance record")
	case errors.Is(err, ledger.ErrReadFailed):
		BadGateway(w, "Failed to read attendance log")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
