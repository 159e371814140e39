package http

import (
	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every route needs a caller (X-User-ID) and is rate limited per caller.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("", mw.Auth(), mw.RateLimit())
	{
		chat.POST("/messages", h.ProcessMessage)
		chat.POST("/parse", h.Parse)
		chat.GET("/status", h.Status)
		chat.DELETE("/history", h.ClearHistory)
	}
}
