package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/haugsdal/packboard/internal/domain/dto"
	"github.com/haugsdal/packboard/internal/i18n"
	"github.com/haugsdal/packboard/internal/middleware"
)

// GetBoard handles GET /api/packing.
// @Summary     Aggregated packing board
// @Description Returns the full aggregated board for a delivery date: one card per customer with product rollups and progress. Defaults to today.
// @Tags        Packing
// @Produce     json
// @Param       date query string false "Delivery date (YYYY-MM-DD)" example(2026-09-01)
// @Success     200 {object} dto.SuccessResponse{data=dto.PackingBoardResponse}
// @Failure     400 {object} dto.ErrorResponse "Malformed date"
// @Failure     500 {object} dto.ErrorResponse "Aggregation failed"
// @Router      /api/packing [get]
func (h *Handler) GetBoard(c *gin.Context) {
	rb := NewResponseBuilder(c)
	date, ok := dateQuery(c)
	if !ok {
		return
	}

	board, err := h.packing.GetBoard(c.Request.Context(), date)
	if err != nil {
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyPackingDataUnavailable, err)
		return
	}
	rb.SuccessOK(board)
}

// GetDisplayBoard handles GET /api/packing/display.
// @Summary     Compact packing board for displays
// @Description Returns the board with the active product selection applied and product lists truncated per display settings. Progress still reflects all lines.
// @Tags        Packing
// @Produce     json
// @Param       date query string false "Delivery date (YYYY-MM-DD)" example(2026-09-01)
// @Success     200 {object} dto.SuccessResponse{data=dto.PackingBoardResponse}
// @Failure     400 {object} dto.ErrorResponse "Malformed date"
// @Failure     500 {object} dto.ErrorResponse "Aggregation failed"
// @Router      /api/packing/display [get]
func (h *Handler) GetDisplayBoard(c *gin.Context) {
	rb := NewResponseBuilder(c)
	date, ok := dateQuery(c)
	if !ok {
		return
	}

	board, err := h.packing.GetDisplayBoard(c.Request.Context(), date)
	if err != nil {
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyPackingDataUnavailable, err)
		return
	}
	rb.SuccessOK(board)
}

// SetLineStatus handles PUT /api/orders/:id/lines/:lineID/status.
// @Summary     Update a line's packing status
// @Description Sets the packing status of one order line and notifies connected displays. Unpacking is a status write like any other; boards recompute from source data.
// @Tags        Packing
// @Accept      json
// @Produce     json
// @Param       id      path string                      true "Order ID"
// @Param       lineID  path string                      true "Order line ID"
// @Param       request body dto.UpdateLineStatusRequest true "New packing status"
// @Success     200 {object} dto.SuccessResponse{data=model.Order}
// @Failure     400 {object} dto.ErrorResponse "Invalid status"
// @Failure     404 {object} dto.ErrorResponse "Order or line not found"
// @Router      /api/orders/{id}/lines/{lineID}/status [put]
func (h *Handler) SetLineStatus(c *gin.Context) {
	rb := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateLineStatusRequest](c)
	if err != nil {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidStatus, err)
		return
	}

	orderID := c.Param("id")
	lineID := c.Param("lineID")
	requestID := middleware.GetRequestID(c)

	updated, err := h.packing.SetLineStatus(c.Request.Context(), orderID, lineID, req.Status, requestID)
	if err != nil {
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	if updated == nil {
		rb.Error(http.StatusNotFound, i18n.ErrKeyLineNotFound, nil)
		return
	}
	rb.SuccessOK(updated)
}
