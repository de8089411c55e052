// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/haugsdal/packboard/internal/circuitbreaker"
	"github.com/haugsdal/packboard/internal/domain/model"
)

// OrderRepositoryWithCircuitBreaker wraps OrderRepository with circuit breaker protection.
type OrderRepositoryWithCircuitBreaker struct {
	repo           *OrderRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewOrderRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewOrderRepositoryWithCircuitBreaker(repo *OrderRepository, cb *circuitbreaker.CircuitBreaker) *OrderRepositoryWithCircuitBreaker {
	return &OrderRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// ListByDeliveryDate returns packing-relevant orders for a date with circuit breaker protection.
func (r *OrderRepositoryWithCircuitBreaker) ListByDeliveryDate(ctx context.Context, date string) ([]model.Order, error) {
	var result []model.Order
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListByDeliveryDate(ctx, date)
		return cbErr
	})
	return result, err
}

// GetByID returns an order by id with circuit breaker protection.
func (r *OrderRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var result *model.Order
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		return cbErr
	})
	return result, err
}

// Create inserts a new order with circuit breaker protection.
func (r *OrderRepositoryWithCircuitBreaker) Create(ctx context.Context, order *model.Order) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, order)
	})
}

// SetStatus updates an order status with circuit breaker protection.
func (r *OrderRepositoryWithCircuitBreaker) SetStatus(ctx context.Context, id string, status model.OrderStatus) (bool, error) {
	var result bool
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.SetStatus(ctx, id, status)
		return cbErr
	})
	return result, err
}

// SetLineStatus updates a line's packing status with circuit breaker protection.
func (r *OrderRepositoryWithCircuitBreaker) SetLineStatus(ctx context.Context, orderID, lineID string, status model.PackingStatus) (*model.Order, error) {
	var result *model.Order
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.SetLineStatus(ctx, orderID, lineID, status)
		return cbErr
	})
	return result, err
}

// Delete removes an order with circuit breaker protection.
func (r *OrderRepositoryWithCircuitBreaker) Delete(ctx context.Context, id string) (bool, error) {
	var result bool
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Delete(ctx, id)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *OrderRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// EventsRepositoryWithCircuitBreaker wraps EventsRepository with circuit breaker protection.
type EventsRepositoryWithCircuitBreaker struct {
	repo           *EventsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewEventsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewEventsRepositoryWithCircuitBreaker(repo *EventsRepository, cb *circuitbreaker.CircuitBreaker) *EventsRepositoryWithCircuitBreaker {
	return &EventsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a packing event with circuit breaker protection.
// If the circuit is open the event is dropped; the audit trail is non-critical.
func (r *EventsRepositoryWithCircuitBreaker) Create(ctx context.Context, event *PackingEventDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, event)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// ListByDate retrieves packing events with circuit breaker protection.
func (r *EventsRepositoryWithCircuitBreaker) ListByDate(ctx context.Context, date string, limit int) ([]*PackingEventDocument, error) {
	var result []*PackingEventDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListByDate(ctx, date, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *EventsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
