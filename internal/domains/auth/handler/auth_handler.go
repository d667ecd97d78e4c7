package handler

import (
	"net/http"

	"streetcats-backend/internal/domains/auth"
	"streetcats-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.SignIn(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, auth.GetHTTPStatusCode(err), "AUTH_001", err.Error())
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Logout handles POST /auth/logout. Requires a valid session; the
// session ID comes from the auth middleware.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetString("sessionID")
	if sessionID == "" {
		response.Unauthorized(c, "No active session")
		return
	}

	if err := h.service.SignOut(c.Request.Context(), sessionID); err != nil {
		// Signed out locally regardless; report the revocation failure.
		response.InternalServerError(c, err.Error())
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Signed out successfully")
}
