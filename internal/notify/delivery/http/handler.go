package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"outreach-agent/internal/notify"
	"outreach-agent/pkg/log"
)

type handler struct {
	l           log.Logger
	broadcaster *notify.Broadcaster
}

// New creates the server-sent events handler.
func New(l log.Logger, b *notify.Broadcaster) *handler {
	return &handler{l: l, broadcaster: b}
}

// Stream godoc
// @Summary     Stream agent events
// @Description Server-sent events: tool_call, tool_execution_complete, sequence_updated, new_message.
// @Tags        Events
// @Produce     text/event-stream
// @Param       user_id query string false "Only events of this user (all users when empty)"
// @Success     200
// @Router      /api/v1/events [GET]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	events, subID := h.broadcaster.Subscribe(ctx, c.Query("user_id"))
	h.l.Infof(ctx, "events stream opened: %s", subID)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(ev.Name, ev)
			return true
		case <-ctx.Done():
			return false
		}
	})
}

// RegisterRoutes mounts GET /events on rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/events", h.Stream)
}
