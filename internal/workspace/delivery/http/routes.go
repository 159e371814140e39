package http

import (
	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ws := rg.Group("", mw.Auth(), mw.RateLimit())
	{
		ws.GET("/tasks", h.ListTasks)
		ws.PATCH("/tasks/:id/complete", h.CompleteTask)
		ws.GET("/stats", h.Stats)
	}
}
