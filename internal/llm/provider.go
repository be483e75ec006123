package llm

import (
	"context"
)

// Message is a minimal chat message format for the provider
type Message struct {
	Role    string // system | user | assistant
	Content string
}

// Usage captures token accounting if available
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// ModelConfig contains per-request model settings
type ModelConfig struct {
	Model       string
	Temperature float32
	JSONOutput  bool
}

// Provider abstracts the chat-completion call.
type Provider interface {
	Generate(ctx context.Context, messages []Message, cfg ModelConfig) (text string, usage Usage, err error)
}
