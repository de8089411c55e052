// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/haugsdal/packboard/internal/domain/model"
)

// CustomerRepositoryInterface defines the interface for customer repository operations.
type CustomerRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*model.Customer, error)
	List(ctx context.Context, onlyActive bool) ([]model.Customer, error)
	Create(ctx context.Context, customer *model.Customer) error
	Update(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ProductRepositoryInterface defines the interface for product repository operations.
type ProductRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*model.Product, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]model.Product, error)
	List(ctx context.Context, onlyActive bool) ([]model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// OrderRepositoryInterface defines the interface for order repository operations.
type OrderRepositoryInterface interface {
	ListByDeliveryDate(ctx context.Context, date string) ([]model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	Create(ctx context.Context, order *model.Order) error
	SetStatus(ctx context.Context, id string, status model.OrderStatus) (bool, error)
	SetLineStatus(ctx context.Context, orderID, lineID string, status model.PackingStatus) (*model.Order, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// SelectionRepositoryInterface defines the interface for selection repository operations.
type SelectionRepositoryInterface interface {
	GetByDate(ctx context.Context, date string) (*model.ActiveSelection, error)
	Upsert(ctx context.Context, selection *model.ActiveSelection) error
	Clear(ctx context.Context, date string) (bool, error)
}

// SettingsRepositoryInterface defines the interface for display settings repository operations.
type SettingsRepositoryInterface interface {
	Get(ctx context.Context) (*model.DisplaySettings, error)
	Upsert(ctx context.Context, settings *model.DisplaySettings) error
}

// EventsRepositoryInterface defines the interface for packing event repository operations.
type EventsRepositoryInterface interface {
	Create(ctx context.Context, event *PackingEventDocument) error
	ListByDate(ctx context.Context, date string, limit int) ([]*PackingEventDocument, error)
}
