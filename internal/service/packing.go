// Package service contains the business logic for the packboard service.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/haugsdal/packboard/internal/domain/dto"
	"github.com/haugsdal/packboard/internal/domain/model"
	"github.com/haugsdal/packboard/internal/logger"
	"github.com/haugsdal/packboard/internal/metrics"
	"github.com/haugsdal/packboard/internal/realtime"
	"github.com/haugsdal/packboard/internal/repository"
)

// ErrRepositoryNotConfigured is returned when a required repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// defaultSnapshotTTL bounds staleness when a change event is missed.
const defaultSnapshotTTL = 15 * time.Second

// board variants used as snapshot cache keys.
const (
	variantFull    = "full"
	variantDisplay = "display"
)

// PackingService provides the aggregated board views and line status updates.
type PackingService interface {
	// GetBoard returns the full board for a date: every product, no
	// truncation, no selection filter.
	GetBoard(ctx context.Context, date string) (*dto.PackingBoardResponse, error)
	// GetDisplayBoard returns the compact board: active-selection filter
	// applied and product lists truncated per display settings.
	GetDisplayBoard(ctx context.Context, date string) (*dto.PackingBoardResponse, error)
	// SetLineStatus updates one line's packing status, records an audit
	// event and publishes a change notification. Returns (nil, nil) when
	// the order or line does not exist.
	SetLineStatus(ctx context.Context, orderID, lineID string, status model.PackingStatus, requestID string) (*model.Order, error)
	// Close releases the change subscription.
	Close()
}

// PackingServiceImpl implements PackingService.
type PackingServiceImpl struct {
	orderRepo     repository.OrderRepositoryInterface
	selectionRepo repository.SelectionRepositoryInterface
	settingsRepo  repository.SettingsRepositoryInterface
	eventsRepo    repository.EventsRepositoryInterface
	aggregator    PackingAggregator
	notifier      realtime.Notifier
	cache         *snapshotCache
	hub           *realtime.Hub
	changes       chan realtime.ChangeEvent
}

// NewPackingService creates a new packing service. When hub is non-nil the
// service subscribes to it and invalidates its snapshot cache on changes.
func NewPackingService(
	orderRepo repository.OrderRepositoryInterface,
	selectionRepo repository.SelectionRepositoryInterface,
	settingsRepo repository.SettingsRepositoryInterface,
	eventsRepo repository.EventsRepositoryInterface,
	aggregator PackingAggregator,
	notifier realtime.Notifier,
	hub *realtime.Hub,
) *PackingServiceImpl {
	s := &PackingServiceImpl{
		orderRepo:     orderRepo,
		selectionRepo: selectionRepo,
		settingsRepo:  settingsRepo,
		eventsRepo:    eventsRepo,
		aggregator:    aggregator,
		notifier:      notifier,
		cache:         newSnapshotCache(defaultSnapshotTTL),
		hub:           hub,
	}
	if hub != nil {
		s.changes = hub.Subscribe()
		go s.watchChanges()
	}
	return s
}

// SetSnapshotTTL adjusts how long aggregated boards are served from cache.
// Non-positive values keep the current TTL.
func (s *PackingServiceImpl) SetSnapshotTTL(ttl time.Duration) {
	if ttl > 0 {
		s.cache.setTTL(ttl)
	}
}

// watchChanges invalidates cached snapshots as change events arrive. Runs
// until the hub subscription is closed.
func (s *PackingServiceImpl) watchChanges() {
	for event := range s.changes {
		if event.Date == "" {
			s.cache.Clear()
			continue
		}
		s.cache.InvalidateDate(event.Date)
	}
}

// Close unsubscribes from the change hub.
func (s *PackingServiceImpl) Close() {
	if s.hub != nil && s.changes != nil {
		s.hub.Unsubscribe(s.changes)
		s.changes = nil
	}
}

// GetBoard returns the full aggregated board for a date.
func (s *PackingServiceImpl) GetBoard(ctx context.Context, date string) (*dto.PackingBoardResponse, error) {
	if s.orderRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	key := snapshotKey(date, variantFull)
	if cached := s.cache.Get(key); cached != nil {
		return cached, nil
	}

	orders, err := s.orderRepo.ListByDeliveryDate(ctx, date)
	if err != nil {
		metrics.RecordAggregation(0, "error")
		return nil, err
	}

	response := s.aggregate(date, orders, AggregateOptions{}, false)
	s.cache.Set(key, response)
	return response, nil
}

// GetDisplayBoard returns the compact board for a date. The active selection
// filters products and supplies color indices; display settings bound the
// product list length per customer.
func (s *PackingServiceImpl) GetDisplayBoard(ctx context.Context, date string) (*dto.PackingBoardResponse, error) {
	if s.orderRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	key := snapshotKey(date, variantDisplay)
	if cached := s.cache.Get(key); cached != nil {
		return cached, nil
	}

	orders, err := s.orderRepo.ListByDeliveryDate(ctx, date)
	if err != nil {
		metrics.RecordAggregation(0, "error")
		return nil, err
	}

	selection, err := s.selectionRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	var normalized model.DisplaySettings
	if settings != nil {
		normalized = settings.Normalize()
	} else {
		normalized = model.DisplaySettings{}.Normalize()
	}

	opts := AggregateOptions{
		ActiveFilter: selection,
		LimitToTopN:  normalized.CompactTopN,
	}
	response := s.aggregate(date, orders, opts, !selection.IsEmpty())
	s.cache.Set(key, response)
	return response, nil
}

// aggregate runs the engine with timing and gauge bookkeeping.
func (s *PackingServiceImpl) aggregate(date string, orders []model.Order, opts AggregateOptions, filtered bool) *dto.PackingBoardResponse {
	start := time.Now()
	customers := s.aggregator.Aggregate(orders, opts)
	metrics.RecordAggregation(time.Since(start), "success")
	metrics.BoardCustomers.Set(float64(len(customers)))

	return &dto.PackingBoardResponse{
		DeliveryDate: date,
		Customers:    customers,
		Filtered:     filtered,
		GeneratedAt:  time.Now(),
	}
}

// SetLineStatus persists the status change, records an audit event and
// notifies displays. The audit event and notification are best effort; the
// persisted change is the source of truth and the next refetch reflects it.
func (s *PackingServiceImpl) SetLineStatus(ctx context.Context, orderID, lineID string, status model.PackingStatus, requestID string) (*model.Order, error) {
	if s.orderRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	before, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if before == nil {
		return nil, nil
	}
	line := before.LineByID(lineID)
	if line == nil {
		return nil, nil
	}
	oldStatus := line.PackingStatus

	updated, err := s.orderRepo.SetLineStatus(ctx, orderID, lineID, status)
	if err != nil || updated == nil {
		return updated, err
	}

	if s.eventsRepo != nil {
		event := &repository.PackingEventDocument{
			DeliveryDate: updated.DeliveryDate,
			OrderID:      orderID,
			LineID:       lineID,
			ProductID:    line.ProductID,
			Action:       "line_status_changed",
			OldStatus:    oldStatus,
			NewStatus:    status,
			RequestID:    requestID,
		}
		if err := s.eventsRepo.Create(ctx, event); err != nil {
			log := logger.Logger()
			log.Warn().Err(err).Str("order_id", orderID).Msg("Failed to record packing event")
		}
	}

	if s.notifier != nil {
		change := realtime.ChangeEvent{Date: updated.DeliveryDate, Kind: realtime.KindLine, ID: lineID}
		if err := s.notifier.Publish(ctx, change); err != nil {
			log := logger.Logger()
			log.Warn().Err(err).Msg("Failed to publish change event")
		}
	}

	return updated, nil
}
