package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/haugsdal/packboard/internal/domain/model"
	"github.com/haugsdal/packboard/internal/mocks"
	"github.com/haugsdal/packboard/internal/realtime"
	"github.com/haugsdal/packboard/internal/repository"
	"github.com/haugsdal/packboard/internal/service"
)

func boardOrder(customerID, customerName string, lines ...model.OrderLine) model.Order {
	return model.Order{
		ID:           "order-" + customerID,
		CustomerID:   customerID,
		CustomerName: customerName,
		DeliveryDate: "2026-09-01",
		Status:       model.OrderPending,
		Lines:        lines,
	}
}

func boardLine(id, productID, productName string, qty int, status model.PackingStatus) model.OrderLine {
	return model.OrderLine{
		ID:            id,
		ProductID:     productID,
		ProductName:   productName,
		Quantity:      qty,
		PackingStatus: status,
	}
}

// newPackingService wires the service from mocks, converting nil mocks to
// nil interfaces so the service's configuration checks behave as in
// production wiring.
func newPackingService(
	orderRepo *mocks.MockOrderRepositoryInterface,
	selectionRepo *mocks.MockSelectionRepositoryInterface,
	settingsRepo *mocks.MockSettingsRepositoryInterface,
	eventsRepo *mocks.MockEventsRepositoryInterface,
	notifier *mocks.MockNotifier,
) *service.PackingServiceImpl {
	var (
		or repository.OrderRepositoryInterface
		sl repository.SelectionRepositoryInterface
		st repository.SettingsRepositoryInterface
		ev repository.EventsRepositoryInterface
		nt realtime.Notifier
	)
	if orderRepo != nil {
		or = orderRepo
	}
	if selectionRepo != nil {
		sl = selectionRepo
	}
	if settingsRepo != nil {
		st = settingsRepo
	}
	if eventsRepo != nil {
		ev = eventsRepo
	}
	if notifier != nil {
		nt = notifier
	}
	return service.NewPackingService(or, sl, st, ev, service.NewPackingAggregatorService(), nt, nil)
}

func TestPackingService_GetBoard(t *testing.T) {
	orders := []model.Order{
		boardOrder("cust-1", "Kafe Fjell",
			boardLine("l1", "p1", "Sourdough", 2, model.PackingPacked),
			boardLine("l2", "p1", "Sourdough", 3, model.PackingPending),
		),
	}

	orderRepo := new(mocks.MockOrderRepositoryInterface)
	orderRepo.On("ListByDeliveryDate", mock.Anything, "2026-09-01").Return(orders, nil)

	svc := newPackingService(orderRepo, nil, nil, nil, nil)
	board, err := svc.GetBoard(context.Background(), "2026-09-01")
	require.NoError(t, err)
	require.NotNil(t, board)

	assert.Equal(t, "2026-09-01", board.DeliveryDate)
	assert.False(t, board.Filtered)
	require.Len(t, board.Customers, 1)
	assert.Equal(t, 50, board.Customers[0].ProgressPercentage)
	assert.False(t, board.GeneratedAt.IsZero())
}

func TestPackingService_GetBoard_CachesSnapshot(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepositoryInterface)
	orderRepo.On("ListByDeliveryDate", mock.Anything, "2026-09-01").Return([]model.Order{}, nil).Once()

	svc := newPackingService(orderRepo, nil, nil, nil, nil)

	first, err := svc.GetBoard(context.Background(), "2026-09-01")
	require.NoError(t, err)
	second, err := svc.GetBoard(context.Background(), "2026-09-01")
	require.NoError(t, err)

	// Same snapshot served; the repository was hit once.
	assert.Same(t, first, second)
	orderRepo.AssertExpectations(t)
}

func TestPackingService_GetBoard_RepositoryError(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepositoryInterface)
	orderRepo.On("ListByDeliveryDate", mock.Anything, "2026-09-01").Return(nil, errors.New("mongo down"))

	svc := newPackingService(orderRepo, nil, nil, nil, nil)
	board, err := svc.GetBoard(context.Background(), "2026-09-01")
	assert.Error(t, err)
	assert.Nil(t, board)
}

func TestPackingService_GetDisplayBoard_AppliesSelectionAndTopN(t *testing.T) {
	orders := []model.Order{
		boardOrder("cust-1", "Kafe Fjell",
			boardLine("l1", "p1", "Sourdough", 2, model.PackingPacked),
			boardLine("l2", "p2", "Rolls", 6, model.PackingPending),
			boardLine("l3", "p3", "Croissant", 4, model.PackingPending),
		),
	}
	selection := &model.ActiveSelection{
		DeliveryDate: "2026-09-01",
		ProductIDs:   []string{"p1", "p2"},
		ProductNames: []string{"Sourdough", "Rolls"},
	}

	orderRepo := new(mocks.MockOrderRepositoryInterface)
	orderRepo.On("ListByDeliveryDate", mock.Anything, "2026-09-01").Return(orders, nil)
	selectionRepo := new(mocks.MockSelectionRepositoryInterface)
	selectionRepo.On("GetByDate", mock.Anything, "2026-09-01").Return(selection, nil)
	settingsRepo := new(mocks.MockSettingsRepositoryInterface)
	settingsRepo.On("Get", mock.Anything).Return(nil, nil)

	svc := newPackingService(orderRepo, selectionRepo, settingsRepo, nil, nil)
	board, err := svc.GetDisplayBoard(context.Background(), "2026-09-01")
	require.NoError(t, err)
	require.NotNil(t, board)

	assert.True(t, board.Filtered)
	require.Len(t, board.Customers, 1)
	customer := board.Customers[0]

	// p3 is filtered out but still counted in overall progress.
	require.Len(t, customer.Products, 2)
	assert.Equal(t, "p1", customer.Products[0].ProductID)
	assert.Equal(t, "p2", customer.Products[1].ProductID)
	assert.Equal(t, 3, customer.TotalLineItemsAll)
	assert.Equal(t, 33, customer.ProgressPercentage)

	// Color indices follow selection order.
	assert.Equal(t, 0, customer.Products[0].ColorIndex)
	assert.Equal(t, 1, customer.Products[1].ColorIndex)
}

func TestPackingService_GetDisplayBoard_NoSelectionUsesDefaults(t *testing.T) {
	orders := []model.Order{
		boardOrder("cust-1", "Kafe Fjell",
			boardLine("l1", "p1", "Sourdough", 1, model.PackingPending),
			boardLine("l2", "p2", "Rolls", 1, model.PackingPending),
			boardLine("l3", "p3", "Croissant", 1, model.PackingPending),
			boardLine("l4", "p4", "Baguette", 1, model.PackingPending),
		),
	}

	orderRepo := new(mocks.MockOrderRepositoryInterface)
	orderRepo.On("ListByDeliveryDate", mock.Anything, "2026-09-01").Return(orders, nil)
	selectionRepo := new(mocks.MockSelectionRepositoryInterface)
	selectionRepo.On("GetByDate", mock.Anything, "2026-09-01").Return(nil, nil)
	settingsRepo := new(mocks.MockSettingsRepositoryInterface)
	settingsRepo.On("Get", mock.Anything).Return(nil, nil)

	svc := newPackingService(orderRepo, selectionRepo, settingsRepo, nil, nil)
	board, err := svc.GetDisplayBoard(context.Background(), "2026-09-01")
	require.NoError(t, err)

	assert.False(t, board.Filtered)
	require.Len(t, board.Customers, 1)
	// Default compact top-N truncates the product list.
	assert.Len(t, board.Customers[0].Products, model.DefaultCompactTopN)
	// Truncation never hides true totals.
	assert.Equal(t, 4, board.Customers[0].TotalLineItemsAll)
}

func TestPackingService_SetLineStatus(t *testing.T) {
	order := boardOrder("cust-1", "Kafe Fjell",
		boardLine("l1", "p1", "Sourdough", 2, model.PackingPending),
	)
	updated := order
	updated.Lines = []model.OrderLine{boardLine("l1", "p1", "Sourdough", 2, model.PackingPacked)}
	updated.Status = model.OrderPacked

	orderRepo := new(mocks.MockOrderRepositoryInterface)
	orderRepo.On("GetByID", mock.Anything, order.ID).Return(&order, nil)
	orderRepo.On("SetLineStatus", mock.Anything, order.ID, "l1", model.PackingPacked).Return(&updated, nil)

	eventsRepo := new(mocks.MockEventsRepositoryInterface)
	eventsRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	notifier := new(mocks.MockNotifier)
	notifier.On("Publish", mock.Anything, realtime.ChangeEvent{
		Date: "2026-09-01",
		Kind: realtime.KindLine,
		ID:   "l1",
	}).Return(nil)

	svc := newPackingService(orderRepo, nil, nil, eventsRepo, notifier)
	result, err := svc.SetLineStatus(context.Background(), order.ID, "l1", model.PackingPacked, "req-1")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, model.OrderPacked, result.Status)

	eventsRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestPackingService_SetLineStatus_OrderMissing(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepositoryInterface)
	orderRepo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	svc := newPackingService(orderRepo, nil, nil, nil, nil)
	result, err := svc.SetLineStatus(context.Background(), "missing", "l1", model.PackingPacked, "")
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestPackingService_SetLineStatus_LineMissing(t *testing.T) {
	order := boardOrder("cust-1", "Kafe Fjell",
		boardLine("l1", "p1", "Sourdough", 2, model.PackingPending),
	)

	orderRepo := new(mocks.MockOrderRepositoryInterface)
	orderRepo.On("GetByID", mock.Anything, order.ID).Return(&order, nil)

	svc := newPackingService(orderRepo, nil, nil, nil, nil)
	result, err := svc.SetLineStatus(context.Background(), order.ID, "no-such-line", model.PackingPacked, "")
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestPackingService_SetLineStatus_EventFailureIsNotFatal(t *testing.T) {
	order := boardOrder("cust-1", "Kafe Fjell",
		boardLine("l1", "p1", "Sourdough", 2, model.PackingPending),
	)
	updated := order

	orderRepo := new(mocks.MockOrderRepositoryInterface)
	orderRepo.On("GetByID", mock.Anything, order.ID).Return(&order, nil)
	orderRepo.On("SetLineStatus", mock.Anything, order.ID, "l1", model.PackingInProgress).Return(&updated, nil)

	eventsRepo := new(mocks.MockEventsRepositoryInterface)
	eventsRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("audit store down"))

	notifier := new(mocks.MockNotifier)
	notifier.On("Publish", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	svc := newPackingService(orderRepo, nil, nil, eventsRepo, notifier)
	result, err := svc.SetLineStatus(context.Background(), order.ID, "l1", model.PackingInProgress, "")
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestPackingService_ChangeEventsInvalidateCache(t *testing.T) {
	hub := realtime.NewHub()
	notifier := realtime.NewLocalNotifier(hub)

	orderRepo := new(mocks.MockOrderRepositoryInterface)
	orderRepo.On("ListByDeliveryDate", mock.Anything, "2026-09-01").Return([]model.Order{}, nil).Twice()

	svc := service.NewPackingService(
		orderRepo, nil, nil, nil,
		service.NewPackingAggregatorService(),
		notifier,
		hub,
	)
	defer svc.Close()

	first, err := svc.GetBoard(context.Background(), "2026-09-01")
	require.NoError(t, err)

	require.NoError(t, notifier.Publish(context.Background(), realtime.ChangeEvent{
		Date: "2026-09-01",
		Kind: realtime.KindOrder,
	}))

	// The hub delivers synchronously through LocalNotifier, but the cache
	// invalidation runs on the watcher goroutine; poll briefly.
	assert.Eventually(t, func() bool {
		board, err := svc.GetBoard(context.Background(), "2026-09-01")
		return err == nil && board != first
	}, time.Second, 10*time.Millisecond)

	orderRepo.AssertExpectations(t)
}

func TestPackingService_NilRepository(t *testing.T) {
	svc := newPackingService(nil, nil, nil, nil, nil)
	_, err := svc.GetBoard(context.Background(), "2026-09-01")
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)
}
