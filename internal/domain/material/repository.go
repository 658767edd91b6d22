package material

import (
	"context"
	"time"
)

// MaterialRepository records material consumption and order requests.
// Orders are the one place the store is updated in place: completion is a
// timestamp written into the order row's completion cell (single admin
// actor, no extra locking).
type MaterialRepository interface {
	AppendUsage(ctx context.Context, usage Usage) error

	AppendOrder(ctx context.Context, workerName string, at time.Time, orderText string) error

	// ListPendingOrders returns orders with an empty completion cell,
	// optionally restricted to a month (year 0 = all).
	ListPendingOrders(ctx context.Context, year, month int) ([]Order, error)

	// MarkOrdersCompleted writes the completion timestamp into each
	// referenced row.
	MarkOrdersCompleted(ctx context.Context, rowNumbers []int, at time.Time) error
}
