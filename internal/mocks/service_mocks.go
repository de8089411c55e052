// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/haugsdal/packboard/internal/domain/dto"
	"github.com/haugsdal/packboard/internal/domain/model"
	"github.com/haugsdal/packboard/internal/realtime"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Publish(ctx context.Context, event realtime.ChangeEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockNotifier) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotifier) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockPackingService struct {
	mock.Mock
}

func (m *MockPackingService) GetBoard(ctx context.Context, date string) (*dto.PackingBoardResponse, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PackingBoardResponse), args.Error(1)
}

func (m *MockPackingService) GetDisplayBoard(ctx context.Context, date string) (*dto.PackingBoardResponse, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PackingBoardResponse), args.Error(1)
}

func (m *MockPackingService) SetLineStatus(ctx context.Context, orderID, lineID string, status model.PackingStatus, requestID string) (*model.Order, error) {
	args := m.Called(ctx, orderID, lineID, status, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockPackingService) Close() {
	m.Called()
}

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) Get(ctx context.Context, id string) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerService) List(ctx context.Context, onlyActive bool) ([]model.Customer, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}

func (m *MockCustomerService) Create(ctx context.Context, req dto.CreateCustomerRequest) (*model.Customer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerService) Update(ctx context.Context, id string, req dto.CreateCustomerRequest) (*model.Customer, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerService) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Get(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context, onlyActive bool) ([]model.Product, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id string, req dto.CreateProductRequest) (*model.Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Get(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) ListByDate(ctx context.Context, date string) ([]model.Order, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*model.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) SetStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockSelectionService struct {
	mock.Mock
}

func (m *MockSelectionService) Get(ctx context.Context, date string) (*model.ActiveSelection, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ActiveSelection), args.Error(1)
}

func (m *MockSelectionService) Update(ctx context.Context, date string, req dto.UpdateSelectionRequest) (*model.ActiveSelection, error) {
	args := m.Called(ctx, date, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ActiveSelection), args.Error(1)
}

func (m *MockSelectionService) Clear(ctx context.Context, date string) (bool, error) {
	args := m.Called(ctx, date)
	return args.Bool(0), args.Error(1)
}

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get(ctx context.Context) (model.DisplaySettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.DisplaySettings), args.Error(1)
}

func (m *MockSettingsService) Update(ctx context.Context, req dto.UpdateSettingsRequest) (model.DisplaySettings, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.DisplaySettings), args.Error(1)
}
