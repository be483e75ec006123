package embedder

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalEmbedderDeterministic(t *testing.T) {
	emb := NewLocalEmbedder()
	ctx := context.Background()

	first, err := emb.Embed(ctx, "can we reschedule our meeting?")
	require.NoError(t, err)
	second, err := emb.Embed(ctx, "can we reschedule our meeting?")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, emb.Dim())
}

func TestLocalEmbedderUnitNorm(t *testing.T) {
	emb := NewLocalEmbedder()

	vec, err := emb.Embed(context.Background(), "hello world")
	require.NoError(t, err)

	norm := 0.0
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-4)
}

func TestLocalEmbedderBatch(t *testing.T) {
	emb := NewLocalEmbedder()

	vecs, err := emb.EmbedBatch(context.Background(), []string{"one", "two"})
	require.NoError(t, err)
	require.Len(t, vecs, 2)
	assert.NotEqual(t, vecs[0], vecs[1])
}
