package http

import (
	"github.com/gin-gonic/gin"

	"outreach-agent/pkg/response"
)

// Generate godoc
// @Summary     Generate a sequence
// @Description Asks the model for a three-step outreach sequence for the position and stores it.
// @Tags        Sequences
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Position and optional context"
// @Success     200 {object} sequenceResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Model returned no usable sequence"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sequences/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	seq, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSequenceResp(seq))
}

// Update godoc
// @Summary     Replace the steps of a sequence
// @Description Replaces every step. An unknown sequence id creates a placeholder sequence.
// @Tags        Sequences
// @Accept      json
// @Produce     json
// @Param       body body updateReq true "Sequence id and the full step list"
// @Success     200 {object} sequenceResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sequences/update [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	seq, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSequenceResp(seq))
}

// Refine godoc
// @Summary     Refine one step
// @Description Replaces the step content, or rewrites it from feedback. Without stepId the first step of sequenceId is used.
// @Tags        Sequences
// @Accept      json
// @Produce     json
// @Param       body body refineReq true "Target and feedback or content"
// @Success     200 {object} refineResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sequences/refine [POST]
func (h *handler) Refine(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRefineReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	step, err := h.uc.RefineStep(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RefineStep: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, refineResp{Step: newStepResp(step)})
}

// Detail godoc
// @Summary     Get a sequence
// @Tags        Sequences
// @Produce     json
// @Param       id path string true "Sequence ID"
// @Success     200 {object} sequenceResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sequences/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	seq, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSequenceResp(seq))
}

// ListByUser godoc
// @Summary     List a user's sequences
// @Tags        Sequences
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sequences/user/{user_id} [GET]
func (h *handler) ListByUser(c *gin.Context) {
	ctx := c.Request.Context()

	seqs, err := h.uc.ListByUser(ctx, c.Param("user_id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListByUser: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(seqs))
}

// Analyze godoc
// @Summary     Analyze a sequence
// @Description Scores length, personalization and calls-to-action of every step.
// @Tags        Sequences
// @Produce     json
// @Param       id path string true "Sequence ID"
// @Success     200 {object} sequence.Analysis
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sequences/{id}/analysis [GET]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	a, err := h.uc.Analyze(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, a)
}

// Delete godoc
// @Summary     Delete a sequence
// @Tags        Sequences
// @Produce     json
// @Param       id path string true "Sequence ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sequences/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
