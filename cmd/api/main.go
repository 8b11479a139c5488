package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RajatShinde3/callmate-ai-backend/internal/ai"
	"github.com/RajatShinde3/callmate-ai-backend/internal/auth"
	"github.com/RajatShinde3/callmate-ai-backend/internal/calls"
	"github.com/RajatShinde3/callmate-ai-backend/internal/config"
	"github.com/RajatShinde3/callmate-ai-backend/internal/ratelimit"
	"github.com/RajatShinde3/callmate-ai-backend/internal/suggest"
	"github.com/RajatShinde3/callmate-ai-backend/pkg/logger"
	"github.com/RajatShinde3/callmate-ai-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// Root context that cancels on shutdown
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env, cfg.App.LogLevel)
	slog.SetDefault(log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	authManager, err := auth.NewManager(cfg.Auth)
	if err != nil {
		log.Error("auth init failed", "err", err)
		os.Exit(1)
	}

	// Rate limit counters live in process memory unless a shared Redis
	// backend is configured.
	var limiter ratelimit.Limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window)
	if cfg.Redis.Addr != "" {
		rdb, err := utils.OpenRedis(rootCtx, utils.RedisConfig{Addr: cfg.Redis.Addr})
		if err != nil {
			log.Error("redis init failed", "err", err)
			os.Exit(1)
		}
		defer rdb.Close()
		limiter = ratelimit.NewRedisLimiter(rdb, cfg.RateLimit.Max, cfg.RateLimit.Window)
	}

	// The completion client is chosen once at startup: real provider when a
	// credential is configured, fixed fallback otherwise.
	var completion ai.CompletionClient = ai.NewFallbackClient()
	if cfg.AIEnabled() {
		completion = ai.NewOpenAIClient(ai.OpenAIConfig{
			APIKey:      cfg.OpenAI.APIKey,
			Model:       cfg.OpenAI.Model,
			Temperature: cfg.OpenAI.Temperature,
			MaxTokens:   cfg.OpenAI.MaxTokens,
		})
	}
	log.Info("completion client ready", "ai_enabled", cfg.AIEnabled(), "model", cfg.OpenAI.Model)

	store := calls.NewMemoryStore()
	store.SeedDemo()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	r := gin.New()
	registerMiddleware(r, cfg, log, limiter, authManager)
	registerRoutes(r, appDeps{
		cfg:        cfg,
		store:      store,
		completion: completion,
		rng:        rng,
		limiter:    limiter,
		start:      time.Now(),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("api listening", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}
}

// appDeps carries startup wiring into route registration.
type appDeps struct {
	cfg        config.Config
	store      calls.Store
	completion ai.CompletionClient
	rng        *rand.Rand
	limiter    ratelimit.Limiter
	start      time.Time
}

func (d appDeps) suggestService() *suggest.Service {
	return suggest.NewService(d.completion, d.cfg.OpenAI.MaxTokens)
}
