package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"outreach-agent/internal/session"
	pkgErrors "outreach-agent/pkg/errors"
	"outreach-agent/pkg/response"
)

// Detail godoc
// @Summary     Get the session snapshot of a user
// @Description Returns the active sequence, last action and stored context of the user, creating an empty session on first access.
// @Tags        Sessions
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} session.Snapshot
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{user_id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	snap, err := h.uc.GetSessionContext(ctx, c.Param("user_id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSessionContext: %v", err)
		response.Error(c, mapError(err))
		return
	}

	response.OK(c, snap)
}

// Clear godoc
// @Summary     Clear the session of a user
// @Tags        Sessions
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{user_id} [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Clear(ctx, c.Param("user_id")); err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		response.Error(c, mapError(err))
		return
	}

	response.OK(c, nil)
}

func mapError(err error) error {
	if errors.Is(err, session.ErrUserRequired) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return pkgErrors.ErrInternalServerError
}
