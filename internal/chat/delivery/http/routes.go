package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the chat endpoints under rg. Extra middleware (rate
// limiting) applies to the message endpoint only.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw ...gin.HandlerFunc) {
	c := rg.Group("/chat")
	{
		c.POST("/message", append(append([]gin.HandlerFunc{}, mw...), h.SendMessage)...)
		c.GET("/history/:user_id", h.History)
	}
}
