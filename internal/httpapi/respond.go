package httpapi

import "github.com/gin-gonic/gin"

// Error codes shared across handlers. These are part of the public wire
// contract; clients match on them.
const (
	CodeValidation   = "Validation error"
	CodeCallNotFound = "Call not found"
	CodeRouteMissing = "Route not found"
	CodeAuthRequired = "Authentication required"
	CodeInvalidToken = "Invalid token"
	CodeTooMany      = "Too many requests"
	CodeCORS         = "CORS error"
	CodeAIFailed     = "AI service failed"
	CodeInternal     = "Internal Server Error"
)

// Error writes the uniform error envelope and aborts the request.
func Error(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":   code,
		"message": message,
	})
}
