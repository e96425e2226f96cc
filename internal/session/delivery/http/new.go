package http

import (
	"github.com/gin-gonic/gin"

	"outreach-agent/internal/session"
	"outreach-agent/pkg/log"
)

type handler struct {
	l  log.Logger
	uc session.UseCase
}

// New creates the HTTP handler for session inspection.
func New(l log.Logger, uc session.UseCase) *handler {
	return &handler{l: l, uc: uc}
}

// RegisterRoutes maps the session endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	sessions := rg.Group("/sessions")
	{
		sessions.GET("/:user_id", h.Detail)
		sessions.DELETE("/:user_id", h.Clear)
	}
}
