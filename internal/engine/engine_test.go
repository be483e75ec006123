package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuehq/kue-brain/internal/llm"
	"github.com/kuehq/kue-brain/internal/types"
)

type countingStore struct {
	calls   int
	samples []string
}

func (s *countingStore) Query(ctx context.Context, text string, k int) []string {
	s.calls++
	return s.samples
}

type fakeProvider struct {
	calls  int
	output string
	err    error

	lastMessages []llm.Message
	lastConfig   llm.ModelConfig
}

func (p *fakeProvider) Generate(ctx context.Context, messages []llm.Message, cfg llm.ModelConfig) (string, llm.Usage, error) {
	p.calls++
	p.lastMessages = messages
	p.lastConfig = cfg
	if p.err != nil {
		return "", llm.Usage{}, p.err
	}
	return p.output, llm.Usage{}, nil
}

func workRequest() *types.ReplyRequest {
	return &types.ReplyRequest{
		IncomingText: "can we reschedule?",
		Dossier:      types.Dossier{Name: "Sam", Category: "Work", RoleTitle: "Manager"},
	}
}

const validModelOutput = `{
  "analysis": {"translation": "They need more time.", "threat_level": 20, "strategy_advice": "Agree and lock a date."},
  "replies": {"positive": "Sure, how about Thursday?", "neutral": "Let me check my week.", "negative": "This week is packed."}
}`

func TestMockModeNeverCallsOut(t *testing.T) {
	store := &countingStore{}
	eng := New(nil, store, "gpt-4o-mini")

	require.Equal(t, ModeMock, eng.Mode())

	resp, err := eng.Handle(context.Background(), workRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, 0, store.calls)
	assert.Len(t, resp.Replies, 3)
}

func TestLiveModeHappyPath(t *testing.T) {
	store := &countingStore{samples: []string{"on it, will confirm by EOD"}}
	provider := &fakeProvider{output: validModelOutput}
	eng := New(provider, store, "gpt-4o-mini")

	require.Equal(t, ModeLive, eng.Mode())

	resp, err := eng.Handle(context.Background(), workRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, store.calls)
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, "They need more time.", resp.Analysis.Translation)
	assert.Equal(t, 20, resp.Analysis.ThreatLevel)
	assert.Len(t, resp.Replies, 3)

	// Retrieved samples flow into the system turn.
	require.Len(t, provider.lastMessages, 2)
	assert.Equal(t, "system", provider.lastMessages[0].Role)
	assert.Contains(t, provider.lastMessages[0].Content, "on it, will confirm by EOD")
	assert.InDelta(t, 0.7, provider.lastConfig.Temperature, 1e-6)
	assert.True(t, provider.lastConfig.JSONOutput)
}

func TestLiveModeProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection reset")}
	eng := New(provider, &countingStore{}, "gpt-4o-mini")

	resp, err := eng.Handle(context.Background(), workRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestLiveModeMalformedOutput(t *testing.T) {
	provider := &fakeProvider{output: "I cannot produce JSON today."}
	eng := New(provider, &countingStore{}, "gpt-4o-mini")

	resp, err := eng.Handle(context.Background(), workRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
}

func TestDecodeModelJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "plain json", input: `{"replies":{}}`},
		{name: "fenced json", input: "```json\n{\"replies\":{}}\n```"},
		{name: "json with prose", input: "Here you go:\n{\"replies\":{}}"},
		{name: "empty", input: "", wantErr: true},
		{name: "no json at all", input: "sorry", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out types.EngineResponse
			err := decodeModelJSON(tt.input, &out)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
