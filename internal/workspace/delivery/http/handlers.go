package http

import (
	"github.com/gin-gonic/gin"

	"productivity-assistant/pkg/response"
)

// ListTasks godoc
// @Summary     List tasks
// @Description Lists the caller's tasks in the organization (or personal scope), optionally due on one day.
// @Tags        Workspace
// @Produce     json
// @Param       X-User-ID       header string true  "Caller id"
// @Param       organization_id query  string false "Organization id"
// @Param       date            query  string false "Due date (YYYY-MM-DD)"
// @Param       status          query  string false "PENDING or COMPLETED"
// @Param       limit           query  int    false "Max items (1-100)"
// @Success     200 {object} listTasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/workspace/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListTasksReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.uc.ListTasks(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListTasksResp(tasks))
}

// CompleteTask godoc
// @Summary     Complete a task
// @Description Marks one of the caller's tasks as completed.
// @Tags        Workspace
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} completeTaskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - already completed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/workspace/tasks/{id}/complete [PATCH]
func (h *handler) CompleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	task, err := h.uc.CompleteTask(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.CompleteTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCompleteTaskResp(task))
}

// Stats godoc
// @Summary     Productivity statistics
// @Description Returns this week's productivity statistics for the caller.
// @Tags        Workspace
// @Produce     json
// @Param       X-User-ID       header string true  "Caller id"
// @Param       organization_id query  string false "Organization id"
// @Success     200 {object} statsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/workspace/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	stats, err := h.uc.GetProductivityStats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetProductivityStats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(stats))
}
