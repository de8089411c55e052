package app

import (
	"github.com/haugsdal/packboard/config"
	"github.com/haugsdal/packboard/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, rt *RealtimeComponents, cfg config.Config) *RouterComponents {
	handler := http.NewHandler(
		services.Packing,
		services.Orders,
		services.Customers,
		services.Products,
		services.Selection,
		services.Settings,
		rt.Hub,
	)

	healthHandler := http.NewHealthHandler()
	if db != nil {
		healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(db.DB.Ping))
		healthHandler.RegisterCircuitBreaker("mongodb_orders", db.OrdersCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_events", db.EventsCircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:   cfg.Server.RateLimit,
		RateWindow:  cfg.Server.RateWindow,
		CORSOrigins: cfg.Server.CORSOrigins,
		SwaggerUser: cfg.Server.SwaggerUser,
		SwaggerPass: cfg.Server.SwaggerPass,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
