package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/haugsdal/packboard/config"
	"github.com/haugsdal/packboard/internal/circuitbreaker"
	"github.com/haugsdal/packboard/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB *repository.MongoDB

	CustomerRepo  repository.CustomerRepositoryInterface
	ProductRepo   repository.ProductRepositoryInterface
	OrderRepo     repository.OrderRepositoryInterface
	SelectionRepo repository.SelectionRepositoryInterface
	SettingsRepo  repository.SettingsRepositoryInterface
	EventsRepo    repository.EventsRepositoryInterface

	OrdersCircuitBreaker *circuitbreaker.CircuitBreaker
	EventsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and creates the repositories.
// Returns nil if the connection fails; the service then starts degraded and
// readiness reports it.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ttlDays := int(cfg.EventsTTL.Hours() / 24)
	if err := db.SetEventsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set events TTL index (may already exist)")
	}

	ordersCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-orders",
	})

	eventsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-events",
	})

	orderRepo := repository.NewOrderRepositoryWithCircuitBreaker(repository.NewOrderRepository(db), ordersCB)
	eventsRepo := repository.NewEventsRepositoryWithCircuitBreaker(repository.NewEventsRepository(db), eventsCB)

	return &DatabaseComponents{
		DB:                   db,
		CustomerRepo:         repository.NewCustomerRepository(db),
		ProductRepo:          repository.NewProductRepository(db),
		OrderRepo:            orderRepo,
		SelectionRepo:        repository.NewSelectionRepository(db),
		SettingsRepo:         repository.NewSettingsRepository(db),
		EventsRepo:           eventsRepo,
		OrdersCircuitBreaker: ordersCB,
		EventsCircuitBreaker: eventsCB,
	}
}

// Close disconnects the MongoDB client.
func (c *DatabaseComponents) Close(ctx context.Context) {
	if c.DB != nil {
		if err := c.DB.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("MongoDB disconnect failed")
		}
	}
}
