package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the sequence endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	seqs := rg.Group("/sequences")
	{
		seqs.POST("/generate", h.Generate)
		seqs.PUT("/update", h.Update)
		seqs.POST("/refine", h.Refine)
		seqs.GET("/user/:user_id", h.ListByUser)
		seqs.GET("/:id", h.Detail)
		seqs.GET("/:id/analysis", h.Analyze)
		seqs.DELETE("/:id", h.Delete)
	}
}
