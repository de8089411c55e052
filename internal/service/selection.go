package service

import (
	"context"

	"github.com/haugsdal/packboard/internal/domain/dto"
	"github.com/haugsdal/packboard/internal/domain/model"
	"github.com/haugsdal/packboard/internal/logger"
	"github.com/haugsdal/packboard/internal/realtime"
	"github.com/haugsdal/packboard/internal/repository"
)

// SelectionService manages the active product selection per delivery date.
type SelectionService interface {
	Get(ctx context.Context, date string) (*model.ActiveSelection, error)
	Update(ctx context.Context, date string, req dto.UpdateSelectionRequest) (*model.ActiveSelection, error)
	Clear(ctx context.Context, date string) (bool, error)
}

// SelectionServiceImpl implements SelectionService.
type SelectionServiceImpl struct {
	selectionRepo repository.SelectionRepositoryInterface
	productRepo   repository.ProductRepositoryInterface
	notifier      realtime.Notifier
}

// NewSelectionService creates a new selection service.
func NewSelectionService(
	selectionRepo repository.SelectionRepositoryInterface,
	productRepo repository.ProductRepositoryInterface,
	notifier realtime.Notifier,
) *SelectionServiceImpl {
	return &SelectionServiceImpl{
		selectionRepo: selectionRepo,
		productRepo:   productRepo,
		notifier:      notifier,
	}
}

// Get returns the selection for a date, or an empty selection when none is
// stored. An empty selection means the board displays everything.
func (s *SelectionServiceImpl) Get(ctx context.Context, date string) (*model.ActiveSelection, error) {
	if s.selectionRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	selection, err := s.selectionRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if selection == nil {
		return &model.ActiveSelection{DeliveryDate: date}, nil
	}
	return selection, nil
}

// Update replaces the selection for a date. Product names are resolved from
// the product catalog when not supplied, so name-fallback matching keeps
// working for lines that predate product ids.
func (s *SelectionServiceImpl) Update(ctx context.Context, date string, req dto.UpdateSelectionRequest) (*model.ActiveSelection, error) {
	if s.selectionRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	names := req.ProductNames
	if len(names) == 0 && len(req.ProductIDs) > 0 && s.productRepo != nil {
		products, err := s.productRepo.GetByIDs(ctx, req.ProductIDs)
		if err != nil {
			return nil, err
		}
		names = make([]string, len(req.ProductIDs))
		for i, id := range req.ProductIDs {
			if p, ok := products[id]; ok {
				names[i] = p.Name
			}
		}
	}

	selection := &model.ActiveSelection{
		DeliveryDate: date,
		ProductIDs:   req.ProductIDs,
		ProductNames: names,
		UpdatedBy:    req.UpdatedBy,
	}
	if err := s.selectionRepo.Upsert(ctx, selection); err != nil {
		return nil, err
	}

	s.notifyChange(ctx, date)
	return selection, nil
}

// Clear removes the selection for a date.
func (s *SelectionServiceImpl) Clear(ctx context.Context, date string) (bool, error) {
	if s.selectionRepo == nil {
		return false, ErrRepositoryNotConfigured
	}

	cleared, err := s.selectionRepo.Clear(ctx, date)
	if err != nil || !cleared {
		return cleared, err
	}

	s.notifyChange(ctx, date)
	return true, nil
}

func (s *SelectionServiceImpl) notifyChange(ctx context.Context, date string) {
	if s.notifier == nil {
		return
	}
	event := realtime.ChangeEvent{Date: date, Kind: realtime.KindSelection}
	if err := s.notifier.Publish(ctx, event); err != nil {
		log := logger.Logger()
		log.Warn().Err(err).Msg("Failed to publish change event")
	}
}
