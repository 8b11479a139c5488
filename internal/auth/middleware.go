package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/RajatShinde3/callmate-ai-backend/internal/httpapi"
	"github.com/gin-gonic/gin"
)

const authorizationHeader = "Authorization"
const bearerPrefix = "Bearer "

// RequireAuth verifies an access token and injects identity into request
// context. Missing token is 401; an invalid or expired one is 403.
func RequireAuth(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := bearerToken(c)
		if tok == "" {
			httpapi.Error(c, http.StatusUnauthorized, httpapi.CodeAuthRequired, "Access token is missing")
			return
		}

		claims, err := m.Verify(tok, time.Now())
		if err != nil {
			httpapi.Error(c, http.StatusForbidden, httpapi.CodeInvalidToken, "Access token is invalid or expired")
			return
		}

		attach(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches identity when a valid token is present and
// continues anonymously otherwise. It never rejects a request.
func OptionalAuth(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok := bearerToken(c); tok != "" {
			if claims, err := m.Verify(tok, time.Now()); err == nil {
				attach(c, claims)
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	raw := strings.TrimSpace(c.GetHeader(authorizationHeader))
	if raw == "" || !strings.HasPrefix(raw, bearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(raw, bearerPrefix)
}

func attach(c *gin.Context, claims Claims) {
	id := Identity{UserID: claims.UserID, Email: claims.Email}
	c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), id))
	c.Set("user_id", id.UserID)
}
