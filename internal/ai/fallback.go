package ai

import "context"

// FallbackMessage is returned on AI-backed routes when no provider
// credential is configured.
const FallbackMessage = "I understand your message. Please configure OpenAI API key for AI-powered responses."

// FallbackClient satisfies CompletionClient without any external provider.
// It never errors and never touches the network.
type FallbackClient struct {
	Message string
}

var _ CompletionClient = FallbackClient{}

func NewFallbackClient() FallbackClient {
	return FallbackClient{Message: FallbackMessage}
}

func (f FallbackClient) Enabled() bool { return false }

func (f FallbackClient) Complete(_ context.Context, _ Request) (Result, error) {
	msg := f.Message
	if msg == "" {
		msg = FallbackMessage
	}
	return Result{Text: msg}, nil
}
