package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/haugsdal/packboard/internal/domain/dto"
	"github.com/haugsdal/packboard/internal/domain/model"
	"github.com/haugsdal/packboard/internal/mocks"
	"github.com/haugsdal/packboard/internal/realtime"
	"github.com/haugsdal/packboard/internal/service"
)

func TestCustomerService_Create(t *testing.T) {
	repo := new(mocks.MockCustomerRepositoryInterface)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Customer) bool {
		return c.Name == "Kafe Fjell" && c.Active
	})).Return(nil)

	notifier := new(mocks.MockNotifier)
	notifier.On("Publish", mock.Anything, mock.MatchedBy(func(e realtime.ChangeEvent) bool {
		return e.Kind == realtime.KindCustomer
	})).Return(nil)

	svc := service.NewCustomerService(repo, notifier)
	customer, err := svc.Create(context.Background(), dto.CreateCustomerRequest{Name: "Kafe Fjell"})
	require.NoError(t, err)
	assert.Equal(t, "Kafe Fjell", customer.Name)
	assert.True(t, customer.Active)
	notifier.AssertExpectations(t)
}

func TestCustomerService_Create_InactiveFlag(t *testing.T) {
	repo := new(mocks.MockCustomerRepositoryInterface)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := service.NewCustomerService(repo, nil)
	inactive := false
	customer, err := svc.Create(context.Background(), dto.CreateCustomerRequest{Name: "Dormant", Active: &inactive})
	require.NoError(t, err)
	assert.False(t, customer.Active)
}

func TestCustomerService_Update_Missing(t *testing.T) {
	repo := new(mocks.MockCustomerRepositoryInterface)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil, nil)

	svc := service.NewCustomerService(repo, nil)
	updated, err := svc.Update(context.Background(), "missing", dto.CreateCustomerRequest{Name: "x"})
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestCustomerService_Delete_NoEventWhenMissing(t *testing.T) {
	repo := new(mocks.MockCustomerRepositoryInterface)
	repo.On("Delete", mock.Anything, "missing").Return(false, nil)

	notifier := new(mocks.MockNotifier)

	svc := service.NewCustomerService(repo, notifier)
	deleted, err := svc.Delete(context.Background(), "missing")
	assert.NoError(t, err)
	assert.False(t, deleted)
	notifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCustomerService_NilRepository(t *testing.T) {
	svc := service.NewCustomerService(nil, nil)
	_, err := svc.List(context.Background(), false)
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)
}

func TestProductService_Create(t *testing.T) {
	repo := new(mocks.MockProductRepositoryInterface)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
		return p.Name == "Sourdough" && p.Price.Equal(decimal.NewFromInt(45))
	})).Return(nil)

	notifier := new(mocks.MockNotifier)
	notifier.On("Publish", mock.Anything, mock.MatchedBy(func(e realtime.ChangeEvent) bool {
		return e.Kind == realtime.KindProduct
	})).Return(nil)

	svc := service.NewProductService(repo, notifier)
	product, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Sourdough",
		Category: "bread",
		Unit:     "pcs",
		Price:    decimal.NewFromInt(45),
	})
	require.NoError(t, err)
	assert.Equal(t, "bread", product.Category)
	notifier.AssertExpectations(t)
}

func TestProductService_Create_RepositoryError(t *testing.T) {
	repo := new(mocks.MockProductRepositoryInterface)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("duplicate name"))

	notifier := new(mocks.MockNotifier)

	svc := service.NewProductService(repo, notifier)
	_, err := svc.Create(context.Background(), dto.CreateProductRequest{Name: "Sourdough"})
	assert.Error(t, err)
	notifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestProductService_List(t *testing.T) {
	repo := new(mocks.MockProductRepositoryInterface)
	repo.On("List", mock.Anything, true).Return([]model.Product{{ID: "p1", Name: "Sourdough"}}, nil)

	svc := service.NewProductService(repo, nil)
	products, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}
