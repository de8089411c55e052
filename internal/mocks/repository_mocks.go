// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/haugsdal/packboard/internal/domain/model"
	"github.com/haugsdal/packboard/internal/repository"
)

type MockCustomerRepositoryInterface struct {
	mock.Mock
}

func (m *MockCustomerRepositoryInterface) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerRepositoryInterface) List(ctx context.Context, onlyActive bool) ([]model.Customer, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}

func (m *MockCustomerRepositoryInterface) Create(ctx context.Context, customer *model.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepositoryInterface) Update(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerRepositoryInterface) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockProductRepositoryInterface struct {
	mock.Mock
}

func (m *MockProductRepositoryInterface) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepositoryInterface) GetByIDs(ctx context.Context, ids []string) (map[string]model.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.Product), args.Error(1)
}

func (m *MockProductRepositoryInterface) List(ctx context.Context, onlyActive bool) ([]model.Product, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepositoryInterface) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepositoryInterface) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepositoryInterface) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockOrderRepositoryInterface struct {
	mock.Mock
}

func (m *MockOrderRepositoryInterface) ListByDeliveryDate(ctx context.Context, date string) ([]model.Order, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepositoryInterface) GetByID(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepositoryInterface) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepositoryInterface) SetStatus(ctx context.Context, id string, status model.OrderStatus) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepositoryInterface) SetLineStatus(ctx context.Context, orderID, lineID string, status model.PackingStatus) (*model.Order, error) {
	args := m.Called(ctx, orderID, lineID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepositoryInterface) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockSelectionRepositoryInterface struct {
	mock.Mock
}

func (m *MockSelectionRepositoryInterface) GetByDate(ctx context.Context, date string) (*model.ActiveSelection, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ActiveSelection), args.Error(1)
}

func (m *MockSelectionRepositoryInterface) Upsert(ctx context.Context, selection *model.ActiveSelection) error {
	args := m.Called(ctx, selection)
	return args.Error(0)
}

func (m *MockSelectionRepositoryInterface) Clear(ctx context.Context, date string) (bool, error) {
	args := m.Called(ctx, date)
	return args.Bool(0), args.Error(1)
}

type MockSettingsRepositoryInterface struct {
	mock.Mock
}

func (m *MockSettingsRepositoryInterface) Get(ctx context.Context) (*model.DisplaySettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DisplaySettings), args.Error(1)
}

func (m *MockSettingsRepositoryInterface) Upsert(ctx context.Context, settings *model.DisplaySettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

type MockEventsRepositoryInterface struct {
	mock.Mock
}

func (m *MockEventsRepositoryInterface) Create(ctx context.Context, event *repository.PackingEventDocument) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventsRepositoryInterface) ListByDate(ctx context.Context, date string, limit int) ([]*repository.PackingEventDocument, error) {
	args := m.Called(ctx, date, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.PackingEventDocument), args.Error(1)
}
