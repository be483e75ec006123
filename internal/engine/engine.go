// Package engine orchestrates one reply-suggestion request: retrieval, prompt
// assembly, the chat call and response parsing, or the mock path when no
// credential is configured.
package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kuehq/kue-brain/internal/llm"
	"github.com/kuehq/kue-brain/internal/persona"
	"github.com/kuehq/kue-brain/internal/prompt"
	"github.com/kuehq/kue-brain/internal/types"
	"github.com/kuehq/kue-brain/internal/utils"
)

// Mode is decided once at construction and never re-evaluated per request.
type Mode string

const (
	ModeMock Mode = "MOCK"
	ModeLive Mode = "LIVE"
)

const retrievalTopK = 3

// StyleStore is the retrieval half of the live path. A nil store means the
// engine simply composes prompts without few-shot samples.
type StyleStore interface {
	Query(ctx context.Context, text string, k int) []string
}

type Engine struct {
	mode     Mode
	memory   StyleStore
	provider llm.Provider
	model    string
}

// New builds an engine. A nil provider (no credential at startup) fixes the
// engine in mock mode for the whole process lifetime.
func New(provider llm.Provider, memory StyleStore, model string) *Engine {
	mode := ModeLive
	if provider == nil {
		mode = ModeMock
	}
	return &Engine{
		mode:     mode,
		memory:   memory,
		provider: provider,
		model:    model,
	}
}

func (e *Engine) Mode() Mode {
	return e.mode
}

// Handle runs one request end to end. Every live-path failure surfaces as a
// single wrapped error; there is no retry and no partial response.
func (e *Engine) Handle(ctx context.Context, req *types.ReplyRequest) (*types.EngineResponse, error) {
	if e.mode == ModeMock {
		return MockRespond(req), nil
	}

	var samples []string
	if e.memory != nil {
		samples = e.memory.Query(ctx, req.IncomingText, retrievalTopK)
	}

	profile := persona.Resolve(req.Dossier.Category)
	composed := prompt.Compose(req, profile, samples)

	text, usage, err := e.provider.Generate(ctx, []llm.Message{
		{Role: "system", Content: composed.System},
		{Role: "user", Content: composed.User},
	}, llm.ModelConfig{
		Model:       e.model,
		Temperature: 0.7,
		JSONOutput:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("mastermind generation failed: %w", err)
	}

	var out types.EngineResponse
	if err := decodeModelJSON(text, &out); err != nil {
		return nil, fmt.Errorf("mastermind generation failed: %w", err)
	}

	utils.Zlog.Debug("Generated reply options",
		zap.String("category", req.Dossier.Category),
		zap.Int("style_samples", len(samples)),
		zap.Int("total_tokens", usage.TotalTokens))

	return &out, nil
}
