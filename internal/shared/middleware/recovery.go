package middleware

import (
	"fmt"
	"net/http"

	"streetcats-backend/internal/shared/response"
	"streetcats-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into the standard error envelope instead
// of a dropped connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered", fmt.Errorf("%v", rec))

				response.ErrorResponse(c, http.StatusInternalServerError, "SYS_001", "Internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
