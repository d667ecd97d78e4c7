package main

import (
	"net/http"

	"streetcats-backend/internal/shared/middleware"
	"streetcats-backend/internal/shared/response"
	"streetcats-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func setupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	v1 := router.Group("/api/v1")

	v1.GET("/health", healthHandler(c))

	// Auth
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", c.AuthHandler.Login)
		authGroup.POST("/logout",
			middleware.AuthRequired(c.JWT, c.Redis),
			c.AuthHandler.Logout,
		)
	}

	// Cats
	cats := v1.Group("/cats")
	{
		cats.GET("", c.CatHandler.List)
		cats.GET("/:id", c.CatHandler.GetByID)
		cats.POST("", c.CatHandler.Create)
		cats.PUT("/:id",
			middleware.AuthRequired(c.JWT, c.Redis),
			c.CatHandler.Update,
		)

		// The privileged boundary: PATCH and soft DELETE require an
		// admin session, not just a signed-in one.
		cats.PATCH("/:id",
			middleware.AuthRequired(c.JWT, c.Redis),
			middleware.AdminRequired(),
			c.CatHandler.AdminPatch,
		)
		cats.DELETE("/:id",
			middleware.AuthRequired(c.JWT, c.Redis),
			middleware.AdminRequired(),
			c.CatHandler.AdminDelete,
		)

		cats.GET("/:id/activities", c.ActivityLogHandler.ListForCat)
		cats.POST("/:id/activities", c.ActivityLogHandler.Create)
	}

	// Cross-cat activity feed
	v1.GET("/activities", c.ActivityLogHandler.ListRecent)

	// Photos
	photos := v1.Group("/photos")
	{
		photos.POST("", c.PhotoHandler.Upload)
		photos.DELETE("",
			middleware.AuthRequired(c.JWT, c.Redis),
			c.PhotoHandler.Delete,
		)
	}

	return router
}

func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checks := gin.H{"database": "ok", "redis": "ok"}
		healthy := true

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			checks["database"] = err.Error()
			healthy = false
		}
		if err := c.Redis.Ping(ctx.Request.Context()); err != nil {
			// Redis is optional; report but stay healthy.
			checks["redis"] = err.Error()
		}

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}

		response.Success(ctx, status, gin.H{
			"status":  map[bool]string{true: "healthy", false: "unhealthy"}[healthy],
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}
