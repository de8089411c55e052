package service

import (
	"context"
	"errors"

	"github.com/haugsdal/packboard/internal/domain/dto"
	"github.com/haugsdal/packboard/internal/domain/model"
	"github.com/haugsdal/packboard/internal/logger"
	"github.com/haugsdal/packboard/internal/realtime"
	"github.com/haugsdal/packboard/internal/repository"
)

var (
	// ErrCustomerNotFound is returned when an order names an unknown customer.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrProductNotFound is returned when an order line names an unknown product.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidOrderStatus is returned for unknown order statuses.
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// OrderService provides order operations.
type OrderService interface {
	Get(ctx context.Context, id string) (*model.Order, error)
	ListByDate(ctx context.Context, date string) ([]model.Order, error)
	Create(ctx context.Context, req dto.CreateOrderRequest) (*model.Order, error)
	SetStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// OrderServiceImpl implements OrderService.
type OrderServiceImpl struct {
	orderRepo    repository.OrderRepositoryInterface
	customerRepo repository.CustomerRepositoryInterface
	productRepo  repository.ProductRepositoryInterface
	notifier     realtime.Notifier
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepositoryInterface,
	customerRepo repository.CustomerRepositoryInterface,
	productRepo repository.ProductRepositoryInterface,
	notifier realtime.Notifier,
) *OrderServiceImpl {
	return &OrderServiceImpl{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		notifier:     notifier,
	}
}

func (s *OrderServiceImpl) Get(ctx context.Context, id string) (*model.Order, error) {
	if s.orderRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.orderRepo.GetByID(ctx, id)
}

func (s *OrderServiceImpl) ListByDate(ctx context.Context, date string) ([]model.Order, error) {
	if s.orderRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.orderRepo.ListByDeliveryDate(ctx, date)
}

// Create validates the request against existing reference data and
// denormalizes customer and product attributes onto the order. Lines carry
// the product name, category, unit and price as they were at order time;
// later product edits do not rewrite history.
func (s *OrderServiceImpl) Create(ctx context.Context, req dto.CreateOrderRequest) (*model.Order, error) {
	if s.orderRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	productIDs := make([]string, 0, len(req.Lines))
	for _, l := range req.Lines {
		productIDs = append(productIDs, l.ProductID)
	}
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	lines := make([]model.OrderLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		product, ok := products[l.ProductID]
		if !ok {
			return nil, ErrProductNotFound
		}
		lines = append(lines, model.OrderLine{
			ProductID:       product.ID,
			ProductName:     product.Name,
			ProductCategory: product.Category,
			ProductUnit:     product.Unit,
			Quantity:        l.Quantity,
			UnitPrice:       product.Price,
			PackingStatus:   model.PackingPending,
		})
	}

	order := &model.Order{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		DeliveryDate: req.DeliveryDate,
		Lines:        lines,
		Notes:        req.Notes,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.notifyChange(ctx, order.DeliveryDate, order.ID)
	return order, nil
}

// SetStatus updates the order-level status. Returns (nil, nil) when the
// order does not exist.
func (s *OrderServiceImpl) SetStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if s.orderRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if !status.IsValid() {
		return nil, ErrInvalidOrderStatus
	}

	ok, err := s.orderRepo.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	updated, err := s.orderRepo.GetByID(ctx, id)
	if err != nil || updated == nil {
		return updated, err
	}

	s.notifyChange(ctx, updated.DeliveryDate, id)
	return updated, nil
}

func (s *OrderServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	if s.orderRepo == nil {
		return false, ErrRepositoryNotConfigured
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if order == nil {
		return false, nil
	}

	deleted, err := s.orderRepo.Delete(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}

	s.notifyChange(ctx, order.DeliveryDate, id)
	return true, nil
}

func (s *OrderServiceImpl) notifyChange(ctx context.Context, date, id string) {
	if s.notifier == nil {
		return
	}
	event := realtime.ChangeEvent{Date: date, Kind: realtime.KindOrder, ID: id}
	if err := s.notifier.Publish(ctx, event); err != nil {
		log := logger.Logger()
		log.Warn().Err(err).Msg("Failed to publish change event")
	}
}
