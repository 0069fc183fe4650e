package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aissummarizer/core/internal/middleware"
	"github.com/aissummarizer/core/internal/modules/auth"
	"github.com/aissummarizer/core/internal/modules/document"
	"github.com/aissummarizer/core/internal/modules/summarize"
	pkgredis "github.com/aissummarizer/core/internal/pkg/redis"
	"github.com/aissummarizer/core/internal/pkg/response"
)

func (a *App) registerRoutes(rc *pkgredis.Client, aiClient summarize.Client) {
	r := a.router
	db := a.db
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	api := r.Group("/api/v1")

	// Summarization is expensive, so the rate limit wraps the whole API.
	api.Use(middleware.RateLimit(rc.Raw(), a.cfg.AI.RateLimitPerMinute, time.Minute))

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "UP",
			"uptime_ms":       time.Since(processStart).Milliseconds(),
			"supported_types": document.SupportedExtensions(),
		})
	})

	auth.NewHandler(auth.NewService(db)).RegisterRoutes(api, authMW)

	summarizeSvc := summarize.NewService(db, aiClient, a.logger)
	summarize.NewHandler(summarizeSvc, a.cfg.MaxFileSizeBytes()).RegisterRoutes(api, authMW)
}
