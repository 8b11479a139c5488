package main

import (
	"log/slog"
	"net/http"

	"github.com/RajatShinde3/callmate-ai-backend/internal/ai"
	"github.com/RajatShinde3/callmate-ai-backend/internal/auth"
	"github.com/RajatShinde3/callmate-ai-backend/internal/calls"
	"github.com/RajatShinde3/callmate-ai-backend/internal/config"
	"github.com/RajatShinde3/callmate-ai-backend/internal/health"
	"github.com/RajatShinde3/callmate-ai-backend/internal/httpapi"
	"github.com/RajatShinde3/callmate-ai-backend/internal/ratelimit"
	"github.com/RajatShinde3/callmate-ai-backend/internal/suggest"
	"github.com/RajatShinde3/callmate-ai-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// registerMiddleware installs the shared pipeline. The order matters:
// security headers go out on every response including rejections, rate
// limiting runs before any per-request work, and CORS rejects before the
// access log records a served request.
func registerMiddleware(r *gin.Engine, cfg config.Config, log *slog.Logger, limiter ratelimit.Limiter, m *auth.Manager) {
	r.Use(httpapi.SecurityHeaders())
	r.Use(httpapi.Recovery(cfg.IsProduction()))
	r.Use(ratelimit.Middleware(limiter))
	r.Use(httpapi.CORS(cfg.CORS.AllowedOrigins))
	r.Use(logger.Middleware(log))
	r.Use(auth.OptionalAuth(m))
}

// registerRoutes wires handlers onto the engine. Keep this file free of
// business logic.
func registerRoutes(r *gin.Engine, deps appDeps) {
	callHandlers := calls.Handlers{Store: deps.store}
	aiHandlers := ai.NewHandlers(deps.completion, deps.rng)
	suggestHandlers := suggest.Handlers{Service: deps.suggestService()}
	healthHandlers := health.Handlers{
		Start:            deps.start,
		AIEnabled:        deps.completion.Enabled(),
		RateLimitBackend: deps.limiter.Backend(),
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "CallMate AI",
			"status":  "running",
			"version": apiVersion,
			"endpoints": gin.H{
				"health":  "/api/health",
				"calls":   "/api/calls",
				"ai":      "/api/ai",
				"chat":    "/api/chat",
				"suggest": "/api/suggest",
			},
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", healthHandlers.Health)
		api.GET("/health/detailed", healthHandlers.Detailed)

		api.GET("/calls", callHandlers.List)
		api.GET("/calls/:id", callHandlers.Get)
		api.POST("/calls", callHandlers.Create)
		api.PUT("/calls/:id", callHandlers.Update)
		api.DELETE("/calls/:id", callHandlers.Delete)

		api.POST("/ai/analyze", aiHandlers.Analyze)
		api.POST("/ai/summarize", aiHandlers.Summarize)
		api.POST("/ai/intent", aiHandlers.Intent)
		api.POST("/ai/chat", aiHandlers.Chat)
		api.POST("/chat", aiHandlers.Chat)

		api.POST("/suggest", suggestHandlers.Suggest)
	}

	r.NoRoute(httpapi.NotFound())
}
