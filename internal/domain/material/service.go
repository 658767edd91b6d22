package material

import "context"

// MaterialService records site material consumption and manages the order
// queue.
type MaterialService interface {
	// RecordUsage appends one consumption row, stamped with the current
	// local time.
	RecordUsage(ctx context.Context, req RecordUsageRequest) error

	// RecordOrder appends one order request row.
	RecordOrder(ctx context.Context, req RecordOrderRequest) error

	// PendingOrders lists uncompleted orders for a period ("YYYY-MM",
	// empty means the current month).
	PendingOrders(ctx context.Context, period string) ([]Order, error)

	// CompleteOrders stamps the referenced order rows with the completion
	// time and returns how many were stamped.
	CompleteOrders(ctx context.Context, req CompleteOrdersRequest) (int, error)
}
