package http

import (
	"github.com/gin-gonic/gin"

	"study-deadline-engine/internal/middleware"
	"study-deadline-engine/pkg/response"
)

// Overview godoc
// @Summary     Deadline overview
// @Description Returns the full aggregation pass: ranked tasks, triage state, and the live nudge.
// @Tags        Deadlines
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} overviewResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/deadlines/overview [GET]
func (h *handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.Overview(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Overview: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newOverviewResp(output))
}

// Ranked godoc
// @Summary     Ranked tasks
// @Description Returns all tasks with priority ranks for the current lookahead window.
// @Tags        Deadlines
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} rankedResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/deadlines/ranked [GET]
func (h *handler) Ranked(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.RankedTasks(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.RankedTasks: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, rankedResp{Tasks: newRankedTasks(output.Tasks)})
}

// Triage godoc
// @Summary     Triage state
// @Description Returns the first overloaded calendar week, or null when the schedule is manageable.
// @Tags        Deadlines
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} triageResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/deadlines/triage [GET]
func (h *handler) Triage(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.Triage(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Triage: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTriageResp(output))
}

// Nudge godoc
// @Summary     Live nudge
// @Description Returns the single live proactive suggestion, or null.
// @Tags        Deadlines
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} nudgeResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/deadlines/nudge [GET]
func (h *handler) Nudge(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.Nudge(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Nudge: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newNudgeResp(output))
}

// Toggle godoc
// @Summary     Toggle task completion
// @Description Flips a task's completion state and reports how far the change propagated.
// @Tags        Deadlines
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} toggleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/deadlines/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processToggleReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	output, err := h.uc.ToggleCompletion(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleCompletion: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newToggleResp(output))
}
