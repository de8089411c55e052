package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/haugsdal/packboard/internal/domain/dto"
	"github.com/haugsdal/packboard/internal/i18n"
	"github.com/haugsdal/packboard/internal/realtime"
	"github.com/haugsdal/packboard/internal/service"
)

// Handler provides HTTP handlers for the packboard API.
type Handler struct {
	packing   service.PackingService
	orders    service.OrderService
	customers service.CustomerService
	products  service.ProductService
	selection service.SelectionService
	settings  service.SettingsService
	hub       *realtime.Hub
}

// NewHandler creates a new Handler instance.
func NewHandler(
	packing service.PackingService,
	orders service.OrderService,
	customers service.CustomerService,
	products service.ProductService,
	selection service.SelectionService,
	settings service.SettingsService,
	hub *realtime.Hub,
) *Handler {
	return &Handler{
		packing:   packing,
		orders:    orders,
		customers: customers,
		products:  products,
		selection: selection,
		settings:  settings,
		hub:       hub,
	}
}

// dateQuery resolves the date query parameter, defaulting to today. Returns
// false after writing a 400 when the parameter is malformed.
func dateQuery(c *gin.Context) (string, bool) {
	date := c.Query("date")
	if date == "" {
		return time.Now().Format("2006-01-02"), true
	}
	if !dto.ValidDeliveryDate(date) {
		NewResponseBuilder(c).Error(400, i18n.ErrKeyInvalidDate, nil)
		return "", false
	}
	return date, true
}

// onlyActiveQuery resolves the active filter flag for reference-data lists.
func onlyActiveQuery(c *gin.Context) bool {
	return c.Query("active") == "true"
}
