package roster

// Worker is one roster sheet entry. The roster is maintained out-of-band;
// the engine only reads it.
type Worker struct {
	// CanonicalName is the log identity: attendance rows are keyed by it.
	CanonicalName string
	// RosterKey is the chat-platform user id used for lookups.
	RosterKey string
	// BaseWorkDays is tenure earned before the ledger existed.
	BaseWorkDays int
	// Address is used for routing convenience only.
	Address string
}
