package suggest

import (
	"net/http"
	"strings"

	"github.com/RajatShinde3/callmate-ai-backend/internal/httpapi"
	"github.com/RajatShinde3/callmate-ai-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Handlers serves POST /api/suggest.
type Handlers struct {
	Service *Service
}

type suggestRequest struct {
	Text   string `json:"text"`
	CallID string `json:"call_id"`
}

func (h Handlers) Suggest(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBind(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		httpapi.Error(c, http.StatusBadRequest, httpapi.CodeValidation, "text is required")
		return
	}
	if req.CallID == "" {
		req.CallID = "demo"
	}

	out, err := h.Service.Suggest(c.Request.Context(), req.Text, req.CallID)
	if err != nil {
		logger.FromGin(c).Error("suggestion failed", "err", err, "call_id", req.CallID)
		httpapi.Error(c, http.StatusInternalServerError, httpapi.CodeAIFailed, "AI provider request failed")
		return
	}

	c.JSON(http.StatusOK, out)
}
