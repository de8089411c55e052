package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/haugsdal/packboard/internal/domain/dto"
	"github.com/haugsdal/packboard/internal/domain/model"
	"github.com/haugsdal/packboard/internal/i18n"
	"github.com/haugsdal/packboard/internal/service"
)

// ListOrders handles GET /api/orders.
// @Summary     List orders for a delivery date
// @Tags        Orders
// @Produce     json
// @Param       date query string false "Delivery date (YYYY-MM-DD)" example(2026-09-01)
// @Success     200 {object} dto.SuccessResponse{data=[]model.Order}
// @Failure     400 {object} dto.ErrorResponse "Malformed date"
// @Router      /api/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	rb := NewResponseBuilder(c)
	date, ok := dateQuery(c)
	if !ok {
		return
	}

	orders, err := h.orders.ListByDate(c.Request.Context(), date)
	if err != nil {
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	rb.SuccessOK(orders)
}

// GetOrder handles GET /api/orders/:id.
// @Summary     Get an order
// @Tags        Orders
// @Produce     json
// @Param       id path string true "Order ID"
// @Success     200 {object} dto.SuccessResponse{data=model.Order}
// @Failure     404 {object} dto.ErrorResponse "Order not found"
// @Router      /api/orders/{id} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	rb := NewResponseBuilder(c)

	order, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	if order == nil {
		rb.Error(http.StatusNotFound, i18n.ErrKeyOrderNotFound, nil)
		return
	}
	rb.SuccessOK(order)
}

// CreateOrder handles POST /api/orders.
// @Summary     Create an order
// @Description Creates an order after validating the customer and every line's product against the catalog. Product name, category, unit and price are denormalized onto the lines.
// @Tags        Orders
// @Accept      json
// @Produce     json
// @Param       request body dto.CreateOrderRequest true "Order payload"
// @Success     201 {object} dto.SuccessResponse{data=model.Order}
// @Failure     400 {object} dto.ErrorResponse "Validation failed"
// @Failure     404 {object} dto.ErrorResponse "Unknown customer or product"
// @Router      /api/orders [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	rb := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateOrderRequest](c)
	if err != nil {
		rb.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	order, err := h.orders.Create(c.Request.Context(), *req)
	switch {
	case errors.Is(err, service.ErrCustomerNotFound):
		rb.Error(http.StatusNotFound, i18n.ErrKeyCustomerNotFound, err)
	case errors.Is(err, service.ErrProductNotFound):
		rb.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
	case err != nil:
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			rb.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
			return
		}
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
	default:
		rb.SuccessCreated(order)
	}
}

// SetOrderStatus handles PUT /api/orders/:id/status.
// @Summary     Update an order's status
// @Description Sets the order-level lifecycle status. Cancelled and completed orders disappear from the packing board.
// @Tags        Orders
// @Accept      json
// @Produce     json
// @Param       id      path string                   true "Order ID"
// @Param       request body dto.UpdateOrderStatusRequest true "New status"
// @Success     200 {object} dto.SuccessResponse{data=model.Order}
// @Failure     400 {object} dto.ErrorResponse "Invalid status"
// @Failure     404 {object} dto.ErrorResponse "Order not found"
// @Router      /api/orders/{id}/status [put]
func (h *Handler) SetOrderStatus(c *gin.Context) {
	rb := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateOrderStatusRequest](c)
	if err != nil {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidStatus, err)
		return
	}

	order, err := h.orders.SetStatus(c.Request.Context(), c.Param("id"), model.OrderStatus(req.Status))
	if errors.Is(err, service.ErrInvalidOrderStatus) {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidStatus, err)
		return
	}
	if err != nil {
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	if order == nil {
		rb.Error(http.StatusNotFound, i18n.ErrKeyOrderNotFound, nil)
		return
	}
	rb.SuccessOK(order)
}

// DeleteOrder handles DELETE /api/orders/:id.
// @Summary     Delete an order
// @Tags        Orders
// @Produce     json
// @Param       id path string true "Order ID"
// @Success     200 {object} dto.SuccessResponse
// @Failure     404 {object} dto.ErrorResponse "Order not found"
// @Router      /api/orders/{id} [delete]
func (h *Handler) DeleteOrder(c *gin.Context) {
	rb := NewResponseBuilder(c)

	deleted, err := h.orders.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	if !deleted {
		rb.Error(http.StatusNotFound, i18n.ErrKeyOrderNotFound, nil)
		return
	}
	rb.SuccessOK(gin.H{"deleted": true})
}
