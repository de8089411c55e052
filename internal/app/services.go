package app

import (
	"github.com/haugsdal/packboard/config"
	"github.com/haugsdal/packboard/internal/repository"
	"github.com/haugsdal/packboard/internal/service"
)

// ServiceComponents holds the business services.
type ServiceComponents struct {
	Packing   service.PackingService
	Orders    service.OrderService
	Customers service.CustomerService
	Products  service.ProductService
	Selection service.SelectionService
	Settings  service.SettingsService
}

// InitializeServices initializes business logic services. Repositories may be
// nil when the database is down; services then answer with a configuration
// error instead of panicking.
func InitializeServices(cfg config.Config, db *DatabaseComponents, rt *RealtimeComponents) *ServiceComponents {
	var (
		customerRepo  repository.CustomerRepositoryInterface
		productRepo   repository.ProductRepositoryInterface
		orderRepo     repository.OrderRepositoryInterface
		selectionRepo repository.SelectionRepositoryInterface
		settingsRepo  repository.SettingsRepositoryInterface
		eventsRepo    repository.EventsRepositoryInterface
	)
	if db != nil {
		customerRepo = db.CustomerRepo
		productRepo = db.ProductRepo
		orderRepo = db.OrderRepo
		selectionRepo = db.SelectionRepo
		settingsRepo = db.SettingsRepo
		eventsRepo = db.EventsRepo
	}

	aggregator := service.NewPackingAggregatorService()

	packing := service.NewPackingService(orderRepo, selectionRepo, settingsRepo, eventsRepo, aggregator, rt.Notifier, rt.Hub)
	packing.SetSnapshotTTL(cfg.Display.SnapshotTTL)

	return &ServiceComponents{
		Packing:   packing,
		Orders:    service.NewOrderService(orderRepo, customerRepo, productRepo, rt.Notifier),
		Customers: service.NewCustomerService(customerRepo, rt.Notifier),
		Products:  service.NewProductService(productRepo, rt.Notifier),
		Selection: service.NewSelectionService(selectionRepo, productRepo, rt.Notifier),
		Settings:  service.NewSettingsService(settingsRepo, rt.Notifier),
	}
}

// Close releases the packing service's change subscription.
func (c *ServiceComponents) Close() {
	if c.Packing != nil {
		c.Packing.Close()
	}
}
