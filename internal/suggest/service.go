// Package suggest composes the external completion client with the local
// sentiment scorer into a single agent-assist suggestion.
package suggest

import (
	"context"
	"time"

	"github.com/RajatShinde3/callmate-ai-backend/internal/ai"
	"github.com/RajatShinde3/callmate-ai-backend/internal/sentiment"
)

// Suggestion is ephemeral; it is returned to the caller and never persisted.
type Suggestion struct {
	Suggestion string         `json:"suggestion"`
	LatencyMS  int64          `json:"latency_ms"`
	Sentiment  sentiment.Mood `json:"sentiment"`
	Confidence float64        `json:"confidence"`
	CallID     string         `json:"call_id"`
	AIEnabled  bool           `json:"ai_enabled"`
}

// Service produces suggestions. MaxTokens is the provider token budget used
// for the confidence heuristic.
type Service struct {
	Client    ai.CompletionClient
	MaxTokens int
}

func NewService(client ai.CompletionClient, maxTokens int) *Service {
	if maxTokens <= 0 {
		maxTokens = 120
	}
	return &Service{Client: client, MaxTokens: maxTokens}
}

// Suggest returns a suggestion for the given customer text. Sentiment is
// always computed locally; the suggestion text comes from the provider, or
// from the fixed fallback without any network call when AI is disabled.
func (s *Service) Suggest(ctx context.Context, text, callID string) (Suggestion, error) {
	start := time.Now()

	res, err := s.Client.Complete(ctx, ai.Request{
		System:    ai.PersonaSuggest,
		User:      text,
		MaxTokens: s.MaxTokens,
	})
	if err != nil {
		return Suggestion{}, err
	}

	confidence := ai.FallbackConfidence
	if s.Client.Enabled() {
		confidence = ai.Confidence(res.CompletionTokens, s.MaxTokens)
	}

	mood, _ := sentiment.Classify(text)

	return Suggestion{
		Suggestion: res.Text,
		LatencyMS:  time.Since(start).Milliseconds(),
		Sentiment:  mood,
		Confidence: confidence,
		CallID:     callID,
		AIEnabled:  s.Client.Enabled(),
	}, nil
}
