package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/model"
	"productivity-assistant/pkg/response"
)

// Auth requires the X-User-ID header and stores the caller's scope on the context.
// The organization comes from the organization_id query parameter when present.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			response.Unauthorized(c)
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID:         userID,
			OrganizationID: strings.TrimSpace(c.Query("organization_id")),
		})
		c.Next()
	}
}

// GetScope returns the scope stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
