package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"streetcats-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	keys map[string]bool
}

func (f *fakeSessions) Get(_ context.Context, key string, _ interface{}) (bool, error) {
	return f.keys[key], nil
}

func (f *fakeSessions) Set(_ context.Context, key string, _ interface{}, _ time.Duration) error {
	f.keys[key] = true
	return nil
}

func (f *fakeSessions) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.keys, k)
	}
	return nil
}

func (f *fakeSessions) Ping(context.Context) error { return nil }

func (f *fakeSessions) Publish(context.Context, string, interface{}) error { return nil }

func (f *fakeSessions) Subscribe(context.Context, string) (<-chan string, error) {
	out := make(chan string)
	close(out)
	return out, nil
}

func setupAuthRouter(t *testing.T, role string) (*gin.Engine, string, *fakeSessions) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := jwt.NewManager("test-secret", time.Hour)
	token, sessionID, _, err := manager.GenerateSessionToken(uuid.NewString(), "user@streetcats.id", role)
	require.NoError(t, err)

	sessions := &fakeSessions{keys: map[string]bool{"session:" + sessionID: true}}

	r := gin.New()
	r.GET("/protected", AuthRequired(manager, sessions), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/admin", AuthRequired(manager, sessions), AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r, token, sessions
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredAcceptsValidSession(t *testing.T) {
	r, token, _ := setupAuthRouter(t, "contributor")
	assert.Equal(t, http.StatusOK, get(r, "/protected", token).Code)
}

func TestAuthRequiredRejectsMissingHeader(t *testing.T) {
	r, _, _ := setupAuthRouter(t, "contributor")
	assert.Equal(t, http.StatusUnauthorized, get(r, "/protected", "").Code)
}

func TestAuthRequiredRejectsGarbageToken(t *testing.T) {
	r, _, _ := setupAuthRouter(t, "contributor")
	assert.Equal(t, http.StatusUnauthorized, get(r, "/protected", "not-a-jwt").Code)
}

func TestAuthRequiredRejectsRevokedSession(t *testing.T) {
	r, token, sessions := setupAuthRouter(t, "contributor")

	// Revoke: a structurally valid token whose session key is gone.
	for k := range sessions.keys {
		delete(sessions.keys, k)
	}

	assert.Equal(t, http.StatusUnauthorized, get(r, "/protected", token).Code)
}

func TestAdminRequiredBlocksNonAdmins(t *testing.T) {
	r, token, _ := setupAuthRouter(t, "contributor")
	assert.Equal(t, http.StatusForbidden, get(r, "/admin", token).Code)
}

func TestAdminRequiredAllowsAdmins(t *testing.T) {
	r, token, _ := setupAuthRouter(t, "admin")
	assert.Equal(t, http.StatusOK, get(r, "/admin", token).Code)
}
