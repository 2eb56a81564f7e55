package main

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"news-backend/internal/realtime"
	"news-backend/internal/shared/middleware"
	"news-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.CORS(),
	)

	// Protected routes re-validate the cookie against Google on every call.
	requireSession := middleware.RequireSession(c.Sessions, c.Identities)

	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(api, c, requireSession)
		setupNewsRoutes(api, c, requireSession)
	}

	// Realtime channel
	router.GET("/ws", realtime.Handler(c.Hub))

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Built SPA, when configured
	setupStaticRoutes(router, c)

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(api *gin.RouterGroup, c *container.Container, requireSession gin.HandlerFunc) {
	api.GET("/login", requireSession, c.AuthHandler.Me)
	api.POST("/login", c.AuthHandler.Login)
	api.POST("/logout", c.AuthHandler.Logout)
}

// ========================================
// NEWS ROUTES
// ========================================
func setupNewsRoutes(api *gin.RouterGroup, c *container.Container, requireSession gin.HandlerFunc) {
	news := api.Group("/news")
	{
		news.GET("", c.NewsHandler.List)
		news.GET("/:id", c.NewsHandler.Get)
		news.POST("", requireSession, c.NewsHandler.Create)
		news.PUT("/:id", requireSession, c.NewsHandler.Update)
		news.DELETE("/:id", requireSession, c.NewsHandler.Delete)
	}
}

// ========================================
// STATIC SPA ROUTES
// ========================================
// Serves the built client and falls back to index.html for non-API GETs so
// client-side routing works on refresh.
func setupStaticRoutes(router *gin.Engine, c *container.Container) {
	staticDir := c.Config.App.StaticDir
	if staticDir == "" {
		return
	}

	router.Static("/assets", filepath.Join(staticDir, "assets"))
	router.StaticFile("/", filepath.Join(staticDir, "index.html"))

	router.NoRoute(func(ctx *gin.Context) {
		if ctx.Request.Method == http.MethodGet && !strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			ctx.File(filepath.Join(staticDir, "index.html"))
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}

		health["services"] = gin.H{
			"database":    dbStatus,
			"connections": appCtx.Hub.ClientCount(),
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
