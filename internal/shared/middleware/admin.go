package middleware

import (
	"streetcats-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// AdminRequired guards the privileged mutation boundary. Soft delete and
// arbitrary partial updates run only with elevated credentials; the regular
// client path is structurally barred from them.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get("role")
		if !ok || role != "admin" {
			response.Forbidden(c, "Access denied: admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
