package roster

import "context"

// RosterRepository resolves worker identities against the roster sheet.
type RosterRepository interface {
	// Resolve matches identityKey against the platform id or the canonical
	// name, exact match only, first match wins. Returns ErrWorkerNotFound
	// when absent; callers fall back to the raw key as display label.
	Resolve(ctx context.Context, identityKey string) (Worker, error)

	// ListAll returns every roster entry with a canonical name.
	ListAll(ctx context.Context) ([]Worker, error)
}
