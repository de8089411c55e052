package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/haugsdal/packboard/internal/domain/dto"
	"github.com/haugsdal/packboard/internal/i18n"
)

// GetSelection handles GET /api/selection.
// @Summary     Active product selection for a date
// @Description Returns the active selection. An empty selection means the board displays every product.
// @Tags        Selection
// @Produce     json
// @Param       date query string false "Delivery date (YYYY-MM-DD)" example(2026-09-01)
// @Success     200 {object} dto.SuccessResponse{data=model.ActiveSelection}
// @Failure     400 {object} dto.ErrorResponse "Malformed date"
// @Router      /api/selection [get]
func (h *Handler) GetSelection(c *gin.Context) {
	rb := NewResponseBuilder(c)
	date, ok := dateQuery(c)
	if !ok {
		return
	}

	selection, err := h.selection.Get(c.Request.Context(), date)
	if err != nil {
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	rb.SuccessOK(selection)
}

// UpdateSelection handles PUT /api/selection.
// @Summary     Replace the active product selection
// @Description Replaces the selection for a date and notifies displays. Selection order defines product color indices.
// @Tags        Selection
// @Accept      json
// @Produce     json
// @Param       date    query string                     false "Delivery date (YYYY-MM-DD)" example(2026-09-01)
// @Param       request body dto.UpdateSelectionRequest true  "Ordered product ids"
// @Success     200 {object} dto.SuccessResponse{data=model.ActiveSelection}
// @Failure     400 {object} dto.ErrorResponse "Validation failed"
// @Router      /api/selection [put]
func (h *Handler) UpdateSelection(c *gin.Context) {
	rb := NewResponseBuilder(c)
	date, ok := dateQuery(c)
	if !ok {
		return
	}

	req, err := BuildRequestAndValidate[dto.UpdateSelectionRequest](c)
	if err != nil {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	selection, err := h.selection.Update(c.Request.Context(), date, *req)
	if err != nil {
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	rb.SuccessOK(selection)
}

// ClearSelection handles DELETE /api/selection.
// @Summary     Clear the active product selection
// @Description Removes the selection for a date, returning the board to the unfiltered view.
// @Tags        Selection
// @Produce     json
// @Param       date query string false "Delivery date (YYYY-MM-DD)" example(2026-09-01)
// @Success     200 {object} dto.SuccessResponse
// @Failure     400 {object} dto.ErrorResponse "Malformed date"
// @Router      /api/selection [delete]
func (h *Handler) ClearSelection(c *gin.Context) {
	rb := NewResponseBuilder(c)
	date, ok := dateQuery(c)
	if !ok {
		return
	}

	cleared, err := h.selection.Clear(c.Request.Context(), date)
	if err != nil {
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	rb.SuccessOK(gin.H{"cleared": cleared})
}

// GetSettings handles GET /api/settings.
// @Summary     Display settings
// @Description Returns the display settings with defaults applied.
// @Tags        Settings
// @Produce     json
// @Success     200 {object} dto.SuccessResponse{data=model.DisplaySettings}
// @Router      /api/settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	rb := NewResponseBuilder(c)

	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	rb.SuccessOK(settings)
}

// UpdateSettings handles PUT /api/settings.
// @Summary     Update display settings
// @Description Stores display settings and notifies displays. Omitted fields fall back to defaults.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       request body dto.UpdateSettingsRequest true "Settings payload"
// @Success     200 {object} dto.SuccessResponse{data=model.DisplaySettings}
// @Failure     400 {object} dto.ErrorResponse "Validation failed"
// @Router      /api/settings [put]
func (h *Handler) UpdateSettings(c *gin.Context) {
	rb := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateSettingsRequest](c)
	if err != nil {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	settings, err := h.settings.Update(c.Request.Context(), *req)
	if err != nil {
		rb.Error(http.StatusInternalServerError, i18n.ErrKeyInternal, err)
		return
	}
	rb.SuccessOK(settings)
}
