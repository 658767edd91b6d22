package material

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldworks/attendance-bot-go/internal/domain/material"
	"github.com/fieldworks/attendance-bot-go/internal/domain/roster"
	"github.com/fieldworks/attendance-bot-go/internal/pkg/validator"
)

type MaterialServiceImpl struct {
	material.MaterialRepository
	roster.RosterRepository

	loc *time.Location
	now func() time.Time
}

func NewMaterialService(
	materialRepo material.MaterialRepository,
	rosterRepo roster.RosterRepository,
	loc *time.Location,
) material.MaterialService {
	return &MaterialServiceImpl{
		MaterialRepository: materialRepo,
		RosterRepository:   rosterRepo,
		loc:                loc,
		now:                time.Now,
	}
}

// RecordUsage implements material.MaterialService.
func (s *MaterialServiceImpl) RecordUsage(ctx context.Context, req material.RecordUsageRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	nowLocal := s.now().In(s.loc)
	name, err := s.workerName(ctx, req.IdentityKey)
	if err != nil {
		return err
	}

	return s.MaterialRepository.AppendUsage(ctx, material.Usage{
		Date:       nowLocal.Format("2006-01-02 15:04:05"),
		WorkerName: name,
		Room:       req.Room,
		Color:      req.Color,
		Quantity:   req.Quantity,
	})
}

// RecordOrder implements material.MaterialService.
func (s *MaterialServiceImpl) RecordOrder(ctx context.Context, req material.RecordOrderRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	name, err := s.workerName(ctx, req.IdentityKey)
	if err != nil {
		return err
	}

	return s.MaterialRepository.AppendOrder(ctx, name, s.now().In(s.loc), req.OrderText)
}

// PendingOrders implements material.MaterialService.
func (s *MaterialServiceImpl) PendingOrders(ctx context.Context, period string) ([]material.Order, error) {
	nowLocal := s.now().In(s.loc)
	year, month := nowLocal.Year(), int(nowLocal.Month())
	if period != "" {
		var err error
		year, month, err = validator.ParsePeriod(period)
		if err != nil {
			return nil, validator.ValidationErrors{{Field: "period", Message: err.Error()}}
		}
	}

	return s.MaterialRepository.ListPendingOrders(ctx, year, month)
}

// CompleteOrders implements material.MaterialService.
func (s *MaterialServiceImpl) CompleteOrders(ctx context.Context, req material.CompleteOrdersRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	if err := s.MaterialRepository.MarkOrdersCompleted(ctx, req.RowNumbers, s.now().In(s.loc)); err != nil {
		return 0, fmt.Errorf("failed to complete orders: %w", err)
	}
	return len(req.RowNumbers), nil
}

// workerName resolves the identity key to the canonical roster name so the
// sheets stay keyed consistently; an unmatched key is logged as-is.
func (s *MaterialServiceImpl) workerName(ctx context.Context, identityKey string) (string, error) {
	worker, err := s.RosterRepository.Resolve(ctx, identityKey)
	if err != nil {
		if errors.Is(err, roster.ErrWorkerNotFound) {
			return identityKey, nil
		}
		return "", fmt.Errorf("failed to resolve worker: %w", err)
	}
	return worker.CanonicalName, nil
}
