package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processRefineReq(c *gin.Context) (refineReq, error) {
	var req refineReq
	err := c.ShouldBindJSON(&req)
	return req, err
}
