package ledger

import "context"

// LedgerService is the engine surface the transport layer calls.
type LedgerService interface {
	// CheckIn resolves the worker, appends a check-in row and reports the
	// current standing. Level-up detection is deliberately absent here: a
	// check-in alone is half a day, the day completes at check-out.
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)

	// CheckOut resolves the worker, appends a check-out row and detects
	// level-up and stage-crossing transitions for this event.
	//
	// The pre-event and post-event tenure are two separate reads with no
	// lock around the store; a concurrent append landing between them can
	// skip or duplicate a detected transition. Accepted limitation: the
	// row store offers no transactions to close the window.
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckOutResponse, error)
}
