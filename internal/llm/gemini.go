package llm

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/kuehq/kue-brain/internal/utils"
)

// GeminiProvider wraps multiple Gemini chat models with round-robin key rotation.
// This distributes API requests across multiple keys to avoid rate limits.
type GeminiProvider struct {
	models   []model.ToolCallingChatModel
	keyIndex uint64 // atomic counter for round-robin selection
}

// NewGeminiProvider creates a provider that rotates between multiple API keys.
// Model name and sampling settings are fixed at construction; per-request
// ModelConfig is ignored for this backend.
func NewGeminiProvider(ctx context.Context, apiKeys []string, modelName string, temperature *float32, maxTokens *int) (*GeminiProvider, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("at least one API key is required")
	}

	models := make([]model.ToolCallingChatModel, len(apiKeys))

	for i, key := range apiKeys {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey: key,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client for key %d: %w", i+1, err)
		}

		chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
			Client:      client,
			Model:       modelName,
			Temperature: temperature,
			MaxTokens:   maxTokens,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create chat model for key %d: %w", i+1, err)
		}

		models[i] = chatModel
	}

	utils.Zlog.Info("Created multi-key Gemini provider with round-robin rotation",
		zap.Int("key_count", len(apiKeys)),
		zap.String("model", modelName))

	return &GeminiProvider{
		models:   models,
		keyIndex: 0,
	}, nil
}

// getNextModel returns the next model using round-robin selection.
// Thread-safe: uses atomic operations to ensure fair distribution.
func (p *GeminiProvider) getNextModel() model.ToolCallingChatModel {
	if len(p.models) == 1 {
		return p.models[0]
	}
	idx := atomic.AddUint64(&p.keyIndex, 1)
	return p.models[idx%uint64(len(p.models))]
}

func (p *GeminiProvider) Generate(ctx context.Context, messages []Message, cfg ModelConfig) (string, Usage, error) {
	input := make([]*schema.Message, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case "system":
			input = append(input, schema.SystemMessage(m.Content))
		case "assistant":
			input = append(input, schema.AssistantMessage(m.Content, nil))
		default:
			input = append(input, schema.UserMessage(m.Content))
		}
	}

	result, err := p.getNextModel().Generate(ctx, input)
	if err != nil {
		return "", Usage{}, fmt.Errorf("gemini generation failed: %w", err)
	}

	usage := Usage{}
	if result.ResponseMeta != nil && result.ResponseMeta.Usage != nil {
		usage.PromptTokens = result.ResponseMeta.Usage.PromptTokens
		usage.CompletionTokens = result.ResponseMeta.Usage.CompletionTokens
		usage.TotalTokens = result.ResponseMeta.Usage.TotalTokens
	}
	return result.Content, usage, nil
}
