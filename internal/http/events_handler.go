package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/haugsdal/packboard/internal/i18n"
)

// StreamEvents handles GET /api/packing/events.
// @Summary     Change notification stream
// @Description Server-sent events stream of packing change notifications. Events carry identifiers only; clients refetch the board when one arrives. The optional date parameter drops events for other delivery dates.
// @Tags        Packing
// @Produce     text/event-stream
// @Param       date query string false "Delivery date filter (YYYY-MM-DD)" example(2026-09-01)
// @Success     200 {string} string "event stream"
// @Router      /api/packing/events [get]
func (h *Handler) StreamEvents(c *gin.Context) {
	if h.hub == nil {
		NewResponseBuilder(c).Error(http.StatusServiceUnavailable, i18n.ErrKeyInternal, nil)
		return
	}

	dateFilter := c.Query("date")

	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	// Tell the client it is connected before the first change arrives.
	c.SSEvent("connected", gin.H{"date": dateFilter})
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case event, open := <-sub:
			if !open {
				return false
			}
			// Dateless events (settings, reference data) reach every client.
			if dateFilter != "" && event.Date != "" && event.Date != dateFilter {
				return true
			}
			c.SSEvent("change", event)
			return true
		case <-clientGone:
			return false
		}
	})
}
