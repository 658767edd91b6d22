package roster

import "errors"

// Roster domain errors
var (
	ErrWorkerNotFound = errors.New("worker not found in roster")
)
