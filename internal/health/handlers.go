package health

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// Handlers reports process liveness. No side effects, no auth.
type Handlers struct {
	Start time.Time

	// AIEnabled and RateLimitBackend describe the startup wiring for the
	// detailed check.
	AIEnabled        bool
	RateLimitBackend string
}

// Health handles GET /api/health.
func (h Handlers) Health(c *gin.Context) {
	uptime := time.Since(h.Start)
	secs := int64(uptime.Seconds())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime": gin.H{
			"seconds":  secs,
			"readable": fmt.Sprintf("%dh %dm %ds", secs/3600, (secs%3600)/60, secs%60),
		},
		"memory": gin.H{
			"alloc":      mb(m.Alloc),
			"totalAlloc": mb(m.TotalAlloc),
			"sys":        mb(m.Sys),
			"heapAlloc":  mb(m.HeapAlloc),
		},
		"goVersion": runtime.Version(),
		"platform":  runtime.GOOS,
	})
}

// Detailed handles GET /api/health/detailed with a per-service status map.
func (h Handlers) Detailed(c *gin.Context) {
	aiMode := "fallback"
	if h.AIEnabled {
		aiMode = "operational"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"services": gin.H{
			"api":       "operational",
			"ai":        aiMode,
			"rateLimit": h.RateLimitBackend,
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func mb(b uint64) string {
	return fmt.Sprintf("%dMB", b/1024/1024)
}
