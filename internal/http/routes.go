package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API routes on the given group.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	packing := api.Group("/packing")
	{
		packing.GET("", h.GetBoard)
		packing.GET("/display", h.GetDisplayBoard)
		packing.GET("/events", h.StreamEvents)
	}

	orders := api.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.POST("", h.CreateOrder)
		orders.GET("/:id", h.GetOrder)
		orders.DELETE("/:id", h.DeleteOrder)
		orders.PUT("/:id/status", h.SetOrderStatus)
		orders.PUT("/:id/lines/:lineID/status", h.SetLineStatus)
	}

	customers := api.Group("/customers")
	{
		customers.GET("", h.ListCustomers)
		customers.POST("", h.CreateCustomer)
		customers.GET("/:id", h.GetCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
	}

	products := api.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.POST("", h.CreateProduct)
		products.GET("/:id", h.GetProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}

	selection := api.Group("/selection")
	{
		selection.GET("", h.GetSelection)
		selection.PUT("", h.UpdateSelection)
		selection.DELETE("", h.ClearSelection)
	}

	settings := api.Group("/settings")
	{
		settings.GET("", h.GetSettings)
		settings.PUT("", h.UpdateSettings)
	}
}
