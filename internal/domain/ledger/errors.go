package ledger

import "errors"

// Ledger domain errors
var (
	ErrWriteFailed = errors.New("failed to write attendance record")
	ErrReadFailed  = errors.New("failed to read attendance log")
)
