package payroll

import "errors"

// Payroll domain errors
var (
	ErrNoWorkRecords = errors.New("no work records for the requested month")
)
