package middleware

import (
	"strings"

	"streetcats-backend/internal/shared/response"
	"streetcats-backend/pkg/cache"
	"streetcats-backend/pkg/jwt"
	"streetcats-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthRequired validates the bearer token and checks the session has not
// been revoked. Sets userID, email and role on the gin context.
func AuthRequired(manager *jwt.Manager, sessions cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract token from "Bearer <token>"
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		// 2. Verify signature and expiry
		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		// 3. A valid token is not enough: sign-out revokes the session
		// in Redis, so the session key must still exist.
		var sess map[string]interface{}
		found, err := sessions.Get(c.Request.Context(), "session:"+claims.SessionID, &sess)
		if err != nil {
			logger.Error("session lookup failed", err)
			response.Unauthorized(c, "session unavailable")
			c.Abort()
			return
		}
		if !found {
			response.Unauthorized(c, "session expired or revoked")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "invalid user ID in token")
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("sessionID", claims.SessionID)

		c.Next()
	}
}
