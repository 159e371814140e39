package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/middleware"
	"productivity-assistant/internal/model"
	"productivity-assistant/pkg/response"
)

var errInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, errMissingScope
	}
	return sc, nil
}

// processListTasksReq binds and validates the list tasks query parameters.
func (h *handler) processListTasksReq(c *gin.Context) (model.Scope, listTasksReq, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, listTasksReq{}, err
	}

	var req listTasksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, err
	}
	if req.Date != "" {
		day, err := time.ParseInLocation(response.DateFormat, req.Date, h.dates.Location())
		if err != nil {
			return sc, req, errInvalidDate
		}
		req.dueOn = &day
	}
	return sc, req, req.validate()
}
