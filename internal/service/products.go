package service

import (
	"context"

	"github.com/haugsdal/packboard/internal/domain/dto"
	"github.com/haugsdal/packboard/internal/domain/model"
	"github.com/haugsdal/packboard/internal/logger"
	"github.com/haugsdal/packboard/internal/realtime"
	"github.com/haugsdal/packboard/internal/repository"
)

// ProductService provides product reference-data operations.
type ProductService interface {
	Get(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, onlyActive bool) ([]model.Product, error)
	Create(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error)
	Update(ctx context.Context, id string, req dto.CreateProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ProductServiceImpl implements ProductService.
type ProductServiceImpl struct {
	productRepo repository.ProductRepositoryInterface
	notifier    realtime.Notifier
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepositoryInterface, notifier realtime.Notifier) *ProductServiceImpl {
	return &ProductServiceImpl{productRepo: productRepo, notifier: notifier}
}

func (s *ProductServiceImpl) Get(ctx context.Context, id string) (*model.Product, error) {
	if s.productRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.productRepo.GetByID(ctx, id)
}

func (s *ProductServiceImpl) List(ctx context.Context, onlyActive bool) ([]model.Product, error) {
	if s.productRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.productRepo.List(ctx, onlyActive)
}

func (s *ProductServiceImpl) Create(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error) {
	if s.productRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	product := &model.Product{
		Name:     req.Name,
		Category: req.Category,
		Unit:     req.Unit,
		Price:    req.Price,
		Active:   req.IsActive(),
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.notifyChange(ctx, product.ID)
	return product, nil
}

func (s *ProductServiceImpl) Update(ctx context.Context, id string, req dto.CreateProductRequest) (*model.Product, error) {
	if s.productRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	product := &model.Product{
		ID:       id,
		Name:     req.Name,
		Category: req.Category,
		Unit:     req.Unit,
		Price:    req.Price,
		Active:   req.IsActive(),
	}
	updated, err := s.productRepo.Update(ctx, product)
	if err != nil || updated == nil {
		return updated, err
	}

	s.notifyChange(ctx, id)
	return updated, nil
}

func (s *ProductServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	if s.productRepo == nil {
		return false, ErrRepositoryNotConfigured
	}

	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}

	s.notifyChange(ctx, id)
	return true, nil
}

func (s *ProductServiceImpl) notifyChange(ctx context.Context, id string) {
	if s.notifier == nil {
		return
	}
	event := realtime.ChangeEvent{Kind: realtime.KindProduct, ID: id}
	if err := s.notifier.Publish(ctx, event); err != nil {
		log := logger.Logger()
		log.Warn().Err(err).Msg("Failed to publish change event")
	}
}
