package ratelimit

import (
	"net/http"

	"github.com/RajatShinde3/callmate-ai-backend/internal/httpapi"
	"github.com/RajatShinde3/callmate-ai-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

const rejectionMessage = "Too many requests from this IP, please try again later."

// Middleware enforces the limiter per client address. A counter-store
// failure admits the request: availability over enforcement.
func Middleware(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.FromGin(c).Warn("rate limit check failed", "err", err, "backend", l.Backend())
			c.Next()
			return
		}
		if !ok {
			httpapi.Error(c, http.StatusTooManyRequests, httpapi.CodeTooMany, rejectionMessage)
			return
		}
		c.Next()
	}
}
