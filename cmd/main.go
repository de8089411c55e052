// Package main is the entry point for the packboard application.
//
// @title           Packboard API
// @version         1.0.0
// @description     Order packing board for bakery dispatch. Aggregates customer
//
//	orders into per-customer packing cards with live progress, an
//	active-product selection for displays, and change notifications.
//
// @contact.name   API Support
// @contact.url    https://github.com/haugsdal/packboard
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Packing
// @tag.description Aggregated packing board and line status operations
//
// @tag.name        Orders
// @tag.description Order management
//
// @tag.name        Customers
// @tag.description Customer reference data
//
// @tag.name        Products
// @tag.description Product catalog
//
// @tag.name        Selection
// @tag.description Active product selection for displays
//
// @tag.name        Settings
// @tag.description Display settings
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	_ "github.com/haugsdal/packboard/docs" // swagger docs

	"github.com/haugsdal/packboard/config"
	"github.com/haugsdal/packboard/internal/app"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server.Port)

	err := server.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Close(ctx)

	if err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
