package service

import (
	"context"

	"github.com/haugsdal/packboard/internal/domain/dto"
	"github.com/haugsdal/packboard/internal/domain/model"
	"github.com/haugsdal/packboard/internal/logger"
	"github.com/haugsdal/packboard/internal/realtime"
	"github.com/haugsdal/packboard/internal/repository"
)

// CustomerService provides customer reference-data operations.
type CustomerService interface {
	Get(ctx context.Context, id string) (*model.Customer, error)
	List(ctx context.Context, onlyActive bool) ([]model.Customer, error)
	Create(ctx context.Context, req dto.CreateCustomerRequest) (*model.Customer, error)
	Update(ctx context.Context, id string, req dto.CreateCustomerRequest) (*model.Customer, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CustomerServiceImpl implements CustomerService.
type CustomerServiceImpl struct {
	customerRepo repository.CustomerRepositoryInterface
	notifier     realtime.Notifier
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo repository.CustomerRepositoryInterface, notifier realtime.Notifier) *CustomerServiceImpl {
	return &CustomerServiceImpl{customerRepo: customerRepo, notifier: notifier}
}

func (s *CustomerServiceImpl) Get(ctx context.Context, id string) (*model.Customer, error) {
	if s.customerRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.customerRepo.GetByID(ctx, id)
}

func (s *CustomerServiceImpl) List(ctx context.Context, onlyActive bool) ([]model.Customer, error) {
	if s.customerRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.customerRepo.List(ctx, onlyActive)
}

func (s *CustomerServiceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (*model.Customer, error) {
	if s.customerRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	customer := &model.Customer{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Address:      req.Address,
		Active:       req.IsActive(),
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.notifyChange(ctx, customer.ID)
	return customer, nil
}

func (s *CustomerServiceImpl) Update(ctx context.Context, id string, req dto.CreateCustomerRequest) (*model.Customer, error) {
	if s.customerRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	customer := &model.Customer{
		ID:           id,
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Address:      req.Address,
		Active:       req.IsActive(),
	}
	updated, err := s.customerRepo.Update(ctx, customer)
	if err != nil || updated == nil {
		return updated, err
	}

	s.notifyChange(ctx, id)
	return updated, nil
}

func (s *CustomerServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	if s.customerRepo == nil {
		return false, ErrRepositoryNotConfigured
	}

	deleted, err := s.customerRepo.Delete(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}

	s.notifyChange(ctx, id)
	return true, nil
}

// notifyChange publishes a customer change. Customer names are denormalized
// into orders, so boards on any date may be affected.
func (s *CustomerServiceImpl) notifyChange(ctx context.Context, id string) {
	if s.notifier == nil {
		return
	}
	event := realtime.ChangeEvent{Kind: realtime.KindCustomer, ID: id}
	if err := s.notifier.Publish(ctx, event); err != nil {
		log := logger.Logger()
		log.Warn().Err(err).Msg("Failed to publish change event")
	}
}
