package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"productivity-assistant/pkg/log"
)

// RequestID propagates the caller's X-Request-ID, or generates one, into the
// request context so every log line of the request carries it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
