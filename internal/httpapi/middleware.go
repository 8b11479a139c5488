package httpapi

import (
	"fmt"
	"net/http"

	"github.com/RajatShinde3/callmate-ai-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// SecurityHeaders applies baseline hardening headers unconditionally.
// This is the first stage of the request pipeline.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "0")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Cross-Origin-Opener-Policy", "same-origin")
		h.Set("Cross-Origin-Resource-Policy", "same-origin")
		c.Next()
	}
}

// CORS checks the request origin against an exact-match allow-list.
// Same-origin and non-browser requests (no Origin header) always pass.
// Allowed origins are echoed back with credentials permitted.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		if _, ok := allowed[origin]; !ok {
			Error(c, http.StatusForbidden, CodeCORS, "Not allowed by CORS")
			return
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		h.Set("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Recovery converts panics from later stages into the uniform 500 envelope.
// Internal detail is exposed only outside production.
func Recovery(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromGin(c).Error("panic recovered", "err", fmt.Sprint(rec), "path", c.Request.URL.Path)
				msg := "Something went wrong"
				if !production {
					msg = fmt.Sprint(rec)
				}
				Error(c, http.StatusInternalServerError, CodeInternal, msg)
			}
		}()
		c.Next()
	}
}

// NotFound echoes the unmatched path in the uniform error envelope.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		Error(c, http.StatusNotFound, CodeRouteMissing,
			fmt.Sprintf("The requested route %s does not exist", c.Request.URL.Path))
	}
}
