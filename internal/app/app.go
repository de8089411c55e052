// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/haugsdal/packboard/config"
	"github.com/haugsdal/packboard/internal/http"
)

// Application bundles the router with the resources that need closing on
// shutdown.
type Application struct {
	Router *gin.Engine

	db       *DatabaseComponents
	realtime *RealtimeComponents
	services *ServiceComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *Application {
	InitializeLogger(cfg.Logging)

	dbComponents := InitializeDatabase(cfg.Database)
	realtimeComponents := InitializeRealtime(cfg.Redis)
	serviceComponents := InitializeServices(cfg, dbComponents, realtimeComponents)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, realtimeComponents, cfg)

	router := http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)

	return &Application{
		Router:   router,
		db:       dbComponents,
		realtime: realtimeComponents,
		services: serviceComponents,
	}
}

// Close releases database connections, the notifier and change subscriptions.
func (a *Application) Close(ctx context.Context) {
	if a.services != nil {
		a.services.Close()
	}
	if a.realtime != nil {
		a.realtime.Close()
	}
	if a.db != nil {
		a.db.Close(ctx)
	}
}
