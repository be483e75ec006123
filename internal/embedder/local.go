package embedder

import (
	"context"
	"hash/fnv"
	"strings"
)

const localEmbeddingDim = 128

// LocalEmbedder is a deterministic, offline bag-of-words hashing embedder.
// It is used when no Gemini keys are configured so similarity search still
// works without any outbound call. Quality is rough but stable: identical
// texts always map to identical vectors.
type LocalEmbedder struct{}

func NewLocalEmbedder() *LocalEmbedder {
	return &LocalEmbedder{}
}

func (l *LocalEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vec := make([]float32, localEmbeddingDim)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(word))
		vec[h.Sum32()%localEmbeddingDim]++
	}
	return normalize(vec), nil
}

func (l *LocalEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		vec, err := l.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

func (l *LocalEmbedder) Dim() int {
	return localEmbeddingDim
}
