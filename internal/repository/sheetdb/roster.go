package sheetdb

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fieldworks/attendance-bot-go/internal/domain/roster"
	"github.com/fieldworks/attendance-bot-go/internal/pkg/rowstore"
)

// UserMaster columns: A name, B platform id, C base work days, D/E unused,
// F address.
const (
	rosterColName = iota
	rosterColKey
	rosterColBaseDays
	_
	_
	rosterColAddress
)

type rosterRepository struct {
	client
}

// NewRosterRepository builds the roster repository over the store.
func NewRosterRepository(store rowstore.Store, callTimeout time.Duration) roster.RosterRepository {
	return &rosterRepository{client: newClient(store, callTimeout)}
}

// Resolve implements roster.RosterRepository.
func (r *rosterRepository) Resolve(ctx context.Context, identityKey string) (roster.Worker, error) {
	rows, err := r.readAllRows(ctx, SheetUserMaster)
	if err != nil {
		return roster.Worker{}, fmt.Errorf("failed to read roster: %w", err)
	}

	for _, row := range dataRows(rows) {
		worker, ok := parseWorker(row)
		if !ok {
			continue
		}
		if worker.RosterKey == identityKey || worker.CanonicalName == identityKey {
			return worker, nil
		}
	}
	return roster.Worker{}, roster.ErrWorkerNotFound
}

// ListAll implements roster.RosterRepository.
func (r *rosterRepository) ListAll(ctx context.Context) ([]roster.Worker, error) {
	rows, err := r.readAllRows(ctx, SheetUserMaster)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	var workers []roster.Worker
	for _, row := range dataRows(rows) {
		if worker, ok := parseWorker(row); ok {
			workers = append(workers, worker)
		}
	}
	return workers, nil
}

// parseWorker maps a roster row to a Worker. Rows without a name are
// skipped; a malformed base-day cell counts as zero. Sheets may render the
// number as "45.0", so the cell parses as a float first.
func parseWorker(row rowstore.Row) (roster.Worker, bool) {
	name := row.Col(rosterColName)
	if name == "" {
		return roster.Worker{}, false
	}

	baseDays := 0
	if raw := row.Col(rosterColBaseDays); raw != "" {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			baseDays = int(f)
		}
	}

	return roster.Worker{
		CanonicalName: name,
		RosterKey:     row.Col(rosterColKey),
		BaseWorkDays:  baseDays,
		Address:       row.Col(rosterColAddress),
	}, true
}
