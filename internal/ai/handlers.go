package ai

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/RajatShinde3/callmate-ai-backend/internal/httpapi"
	"github.com/RajatShinde3/callmate-ai-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handlers serves the /api/ai surface. The analyze/summarize/intent
// endpoints are explicitly non-deterministic mocks, not real inference; the
// randomness source is injected so tests can seed it.
type Handlers struct {
	Client  CompletionClient
	Persona string

	mu    sync.Mutex
	rng   *rand.Rand
	clock func() time.Time
}

func NewHandlers(client CompletionClient, rng *rand.Rand) *Handlers {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Handlers{
		Client:  client,
		Persona: PersonaChat,
		rng:     rng,
		clock:   time.Now,
	}
}

// randFloat draws from the shared source. *rand.Rand is not goroutine-safe
// and gin runs handlers concurrently.
func (h *Handlers) randFloat() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rng.Float64()
}

func (h *Handlers) randIndex(n int) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rng.Intn(n)
}

type analyzeRequest struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// Analyze handles POST /api/ai/analyze.
func (h *Handlers) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBind(&req); err != nil || req.Text == "" {
		httpapi.Error(c, http.StatusBadRequest, httpapi.CodeValidation, "text is required for analysis")
		return
	}
	if req.Type == "" {
		req.Type = "general"
	}

	mood := "negative"
	if h.randFloat() > 0.5 {
		mood = "positive"
	}
	confidence := h.randFloat()*0.4 + 0.6 // 0.60 to 1.00

	c.JSON(http.StatusOK, gin.H{
		"message": "Analysis completed successfully",
		"analysis": gin.H{
			"sentiment":  mood,
			"confidence": fmt.Sprintf("%.2f", confidence),
			"keywords":   []string{"customer", "service", "help", "product"},
			"summary":    fmt.Sprintf("This is a mock AI-generated summary. The text appears to be %s in nature.", req.Type),
			"topics":     []string{"customer service", "product inquiry"},
			"timestamp":  h.clock().UTC().Format(time.RFC3339),
		},
		"originalText": truncate(req.Text, 100),
	})
}

type summarizeRequest struct {
	Transcript string `json:"transcript"`
	MaxLength  int    `json:"maxLength"`
}

// Summarize handles POST /api/ai/summarize.
func (h *Handlers) Summarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBind(&req); err != nil || req.Transcript == "" {
		httpapi.Error(c, http.StatusBadRequest, httpapi.CodeValidation, "transcript is required for summarization")
		return
	}
	if req.MaxLength <= 0 {
		req.MaxLength = 200
	}

	tone := "constructive"
	if h.randFloat() > 0.5 {
		tone = "positive"
	}
	summary := fmt.Sprintf("Mock AI summary: This transcript discusses customer concerns and product information. The interaction was %s in nature.", tone)
	if len(summary) > req.MaxLength {
		summary = summary[:req.MaxLength]
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Summary generated successfully",
		"summary":        summary,
		"wordCount":      len(strings.Fields(summary)),
		"originalLength": len(req.Transcript),
		"timestamp":      h.clock().UTC().Format(time.RFC3339),
	})
}

type intentRequest struct {
	Message string `json:"message"`
}

// Intent handles POST /api/ai/intent with a ranked mock intent list.
func (h *Handlers) Intent(c *gin.Context) {
	var req intentRequest
	if err := c.ShouldBind(&req); err != nil || req.Message == "" {
		httpapi.Error(c, http.StatusBadRequest, httpapi.CodeValidation, "message is required for intent detection")
		return
	}

	intents := []gin.H{
		{"name": "customer_support", "confidence": 0.85},
		{"name": "product_inquiry", "confidence": 0.72},
		{"name": "billing_question", "confidence": 0.45},
		{"name": "complaint", "confidence": 0.30},
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Intent detection completed",
		"topIntent":  intents[0],
		"allIntents": intents,
		"timestamp":  h.clock().UTC().Format(time.RFC3339),
	})
}

type chatRequest struct {
	Message string `json:"message"`
}

// Chat serves both POST /api/chat and POST /api/ai/chat. One handler,
// persona and model limits as configuration.
func (h *Handlers) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBind(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		httpapi.Error(c, http.StatusBadRequest, httpapi.CodeValidation, "message is required for chat")
		return
	}

	res, err := h.Client.Complete(c.Request.Context(), Request{
		System: h.Persona,
		User:   req.Message,
	})
	if err != nil {
		logger.FromGin(c).Error("chat completion failed", "err", err)
		httpapi.Error(c, http.StatusInternalServerError, httpapi.CodeAIFailed, "AI provider request failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "AI response generated",
		"reply":          res.Text,
		"latency_ms":     res.LatencyMS,
		"conversationId": "conv_" + uuid.NewString(),
		"ai_enabled":     h.Client.Enabled(),
	})
}

// truncate limits s to max bytes on a rune boundary, appending an ellipsis
// when anything was cut.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
