package http

import (
	"github.com/gin-gonic/gin"

	"outreach-agent/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Stores the message, runs one agent turn (tools included) and returns the assistant reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "Message and optional user/sequence"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/message [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.SendMessage(ctx, req.toInput(h.defaultUserID))
	if err != nil {
		h.l.Errorf(ctx, "uc.SendMessage: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSendMessageResp(out))
}

// History godoc
// @Summary     Chat history
// @Description Oldest-first messages of a user.
// @Tags        Chat
// @Produce     json
// @Param       user_id path  string true  "User ID"
// @Param       limit   query int    false "Max messages (default 20, max 100)"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/history/{user_id} [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	msgs, err := h.uc.History(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newHistoryResp(msgs))
}
