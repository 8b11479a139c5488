// Package ai wraps the external text-generation provider behind a small
// interface. The implementation is chosen once at startup: a real OpenAI
// client when a credential is configured, otherwise a fallback client that
// degrades gracefully without touching the network.
package ai

import "context"

// Request is one completion call. Zero-valued Temperature/MaxTokens fall
// back to the client's configured defaults.
type Request struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// Result is the provider's answer plus the metering needed for the
// confidence heuristic.
type Result struct {
	Text             string
	LatencyMS        int64
	CompletionTokens int
}

// CompletionClient is the contract both the real and the fallback client
// satisfy. Complete never panics; failures surface as errors the owning
// route handler converts locally.
type CompletionClient interface {
	Complete(ctx context.Context, req Request) (Result, error)

	// Enabled reports whether an external provider backs this client.
	Enabled() bool
}

// defaultConfidence is used when usage metering is unavailable.
const defaultConfidence = 0.7

// FallbackConfidence is the fixed estimate attached to fallback-mode output.
const FallbackConfidence = 0.5

// Confidence estimates output quality as the fraction of the requested
// token budget the provider produced, capped at 1.0. It is a heuristic, not
// a calibrated probability.
func Confidence(completionTokens, maxTokens int) float64 {
	if completionTokens <= 0 || maxTokens <= 0 {
		return defaultConfidence
	}
	c := float64(completionTokens) / float64(maxTokens)
	if c > 1 {
		return 1
	}
	return c
}
