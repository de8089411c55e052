package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/haugsdal/packboard/internal/domain/dto"
	"github.com/haugsdal/packboard/internal/domain/model"
	"github.com/haugsdal/packboard/internal/mocks"
	"github.com/haugsdal/packboard/internal/realtime"
	"github.com/haugsdal/packboard/internal/service"
)

func TestSelectionService_Get_EmptyWhenUnset(t *testing.T) {
	repo := new(mocks.MockSelectionRepositoryInterface)
	repo.On("GetByDate", mock.Anything, "2026-09-01").Return(nil, nil)

	svc := service.NewSelectionService(repo, nil, nil)
	selection, err := svc.Get(context.Background(), "2026-09-01")
	require.NoError(t, err)
	require.NotNil(t, selection)
	assert.True(t, selection.IsEmpty())
	assert.Equal(t, "2026-09-01", selection.DeliveryDate)
}

func TestSelectionService_Update_ResolvesNamesFromCatalog(t *testing.T) {
	repo := new(mocks.MockSelectionRepositoryInterface)
	repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	productRepo := new(mocks.MockProductRepositoryInterface)
	productRepo.On("GetByIDs", mock.Anything, []string{"p1", "p2"}).Return(map[string]model.Product{
		"p1": {ID: "p1", Name: "Sourdough"},
		"p2": {ID: "p2", Name: "Rolls"},
	}, nil)

	notifier := new(mocks.MockNotifier)
	notifier.On("Publish", mock.Anything, realtime.ChangeEvent{
		Date: "2026-09-01",
		Kind: realtime.KindSelection,
	}).Return(nil)

	svc := service.NewSelectionService(repo, productRepo, notifier)
	selection, err := svc.Update(context.Background(), "2026-09-01", dto.UpdateSelectionRequest{
		ProductIDs: []string{"p1", "p2"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sourdough", "Rolls"}, selection.ProductNames)
	notifier.AssertExpectations(t)
}

func TestSelectionService_Update_KeepsSuppliedNames(t *testing.T) {
	repo := new(mocks.MockSelectionRepositoryInterface)
	repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	svc := service.NewSelectionService(repo, nil, nil)
	selection, err := svc.Update(context.Background(), "2026-09-01", dto.UpdateSelectionRequest{
		ProductIDs:   []string{"p1"},
		ProductNames: []string{"Sourdough"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sourdough"}, selection.ProductNames)
}

func TestSelectionService_Clear(t *testing.T) {
	repo := new(mocks.MockSelectionRepositoryInterface)
	repo.On("Clear", mock.Anything, "2026-09-01").Return(true, nil)

	notifier := new(mocks.MockNotifier)
	notifier.On("Publish", mock.Anything, mock.Anything).Return(nil)

	svc := service.NewSelectionService(repo, nil, notifier)
	cleared, err := svc.Clear(context.Background(), "2026-09-01")
	require.NoError(t, err)
	assert.True(t, cleared)
	notifier.AssertExpectations(t)
}

func TestSelectionService_Clear_NothingStored(t *testing.T) {
	repo := new(mocks.MockSelectionRepositoryInterface)
	repo.On("Clear", mock.Anything, "2026-09-01").Return(false, nil)

	notifier := new(mocks.MockNotifier)

	svc := service.NewSelectionService(repo, nil, notifier)
	cleared, err := svc.Clear(context.Background(), "2026-09-01")
	require.NoError(t, err)
	assert.False(t, cleared)
	notifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestSettingsService_Get_DefaultsWhenUnset(t *testing.T) {
	repo := new(mocks.MockSettingsRepositoryInterface)
	repo.On("Get", mock.Anything).Return(nil, nil)

	svc := service.NewSettingsService(repo, nil)
	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCompactTopN, settings.CompactTopN)
	assert.Equal(t, model.DefaultTheme, settings.Theme)
	require.NotNil(t, settings.ShowDate)
	assert.True(t, *settings.ShowDate)
}

func TestSettingsService_Update(t *testing.T) {
	repo := new(mocks.MockSettingsRepositoryInterface)
	repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	notifier := new(mocks.MockNotifier)
	notifier.On("Publish", mock.Anything, realtime.ChangeEvent{Kind: realtime.KindSettings}).Return(nil)

	svc := service.NewSettingsService(repo, notifier)
	settings, err := svc.Update(context.Background(), dto.UpdateSettingsRequest{Theme: "dark", CompactTopN: 5})
	require.NoError(t, err)
	assert.Equal(t, "dark", settings.Theme)
	assert.Equal(t, 5, settings.CompactTopN)
	notifier.AssertExpectations(t)
}
