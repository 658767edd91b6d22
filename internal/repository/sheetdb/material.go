package sheetdb

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fieldworks/attendance-bot-go/internal/domain/material"
	"github.com/fieldworks/attendance-bot-go/internal/pkg/rowstore"
)

// MaterialLog columns: A datetime, B name, C room, D color, E quantity.
const (
	usageColDate = iota
	usageColName
	usageColRoom
	usageColColor
	usageColQuantity
)

// MaterialOrder columns: A datetime, B name, C order text, D completion
// timestamp (empty while pending).
const (
	orderColDate = iota
	orderColName
	orderColText
	orderColCompleted
)

// orderCompletedColumn is the A1 column letter of orderColCompleted.
const orderCompletedColumn = "D"

type materialRepository struct {
	client
}

// NewMaterialRepository builds the material repository over the store.
func NewMaterialRepository(store rowstore.Store, callTimeout time.Duration) material.MaterialRepository {
	return &materialRepository{client: newClient(store, callTimeout)}
}

// AppendUsage implements material.MaterialRepository.
func (r *materialRepository) AppendUsage(ctx context.Context, usage material.Usage) error {
	row := rowstore.Row{
		usage.Date,
		usage.WorkerName,
		usage.Room,
		usage.Color,
		strconv.FormatFloat(usage.Quantity, 'f', -1, 64),
	}
	if err := r.appendRow(ctx, SheetMaterialLog, row); err != nil {
		return fmt.Errorf("failed to record material usage: %w", err)
	}
	return nil
}

// AppendOrder implements material.MaterialRepository.
func (r *materialRepository) AppendOrder(ctx context.Context, workerName string, at time.Time, orderText string) error {
	row := rowstore.Row{
		at.Format(DateTimeLayout),
		workerName,
		orderText,
	}
	if err := r.appendRow(ctx, SheetMaterialOrder, row); err != nil {
		return fmt.Errorf("failed to record material order: %w", err)
	}
	return nil
}

// ListPendingOrders implements material.MaterialRepository.
func (r *materialRepository) ListPendingOrders(ctx context.Context, year, month int) ([]material.Order, error) {
	rows, err := r.readAllRows(ctx, SheetMaterialOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to read material orders: %w", err)
	}

	prefix := ""
	if year != 0 {
		prefix = monthPrefix(year, month)
	}

	var orders []material.Order
	for i, row := range dataRows(rows) {
		if row.Col(orderColText) == "" {
			continue
		}
		if row.Col(orderColCompleted) != "" {
			continue
		}
		// The datetime cell may carry a time part; only the date part is
		// matched against the month.
		date := row.Col(orderColDate)
		if datePart, _, found := strings.Cut(date, " "); found {
			date = datePart
		}
		if prefix != "" && !strings.HasPrefix(date, prefix) {
			continue
		}
		orders = append(orders, material.Order{
			RowNumber:  i + 2, // 1-based, after the header row
			Date:       row.Col(orderColDate),
			WorkerName: row.Col(orderColName),
			OrderText:  row.Col(orderColText),
		})
	}
	return orders, nil
}

// MarkOrdersCompleted implements material.MaterialRepository.
func (r *materialRepository) MarkOrdersCompleted(ctx context.Context, rowNumbers []int, at time.Time) error {
	completedAt := at.Format(DateTimeLayout)
	for _, rowNumber := range rowNumbers {
		cellRef := fmt.Sprintf("%s%d", orderCompletedColumn, rowNumber)
		if err := r.updateCell(ctx, SheetMaterialOrder, cellRef, completedAt); err != nil {
			return fmt.Errorf("failed to complete order at row %d: %w", rowNumber, err)
		}
	}
	return nil
}
