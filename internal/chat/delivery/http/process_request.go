package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, err
	}
	err := c.ShouldBindQuery(&req)
	return req, err
}
