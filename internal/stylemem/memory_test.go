package stylemem

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuehq/kue-brain/internal/embedder"
)

func openTestMemory(t *testing.T) *Memory {
	t.Helper()
	mem, err := Open(filepath.Join(t.TempDir(), "style.db"), embedder.NewLocalEmbedder())
	require.NoError(t, err)
	t.Cleanup(func() { _ = mem.Close() })
	return mem
}

func TestQueryEmptyStore(t *testing.T) {
	mem := openTestMemory(t)

	docs := mem.Query(context.Background(), "can we reschedule?", 3)
	assert.Empty(t, docs)
}

func TestQueryEmptyText(t *testing.T) {
	mem := openTestMemory(t)

	assert.Empty(t, mem.Query(context.Background(), "", 3))
	assert.Empty(t, mem.Query(context.Background(), "hello", 0))
}

func TestLoadAndQuery(t *testing.T) {
	mem := openTestMemory(t)
	ctx := context.Background()

	err := mem.Load(ctx, []Sample{
		{Text: "sounds good, on it", Tag: "Work"},
		{Text: "let me check my calendar", Tag: "Work"},
	})
	require.NoError(t, err)

	docs := mem.Query(ctx, "let me check my calendar", 3)
	require.NotEmpty(t, docs)
	assert.Contains(t, docs, "let me check my calendar")
	assert.LessOrEqual(t, len(docs), 3)
}

func TestLoadReplacesPriorCorpus(t *testing.T) {
	mem := openTestMemory(t)
	ctx := context.Background()

	corpusA := []Sample{
		{Text: "alpha one"},
		{Text: "alpha two"},
	}
	corpusB := []Sample{
		{Text: "beta one"},
	}

	require.NoError(t, mem.Load(ctx, corpusA))
	require.NoError(t, mem.Load(ctx, corpusB))

	docs := mem.Query(ctx, "beta one", 10)
	require.NotEmpty(t, docs)
	for _, d := range docs {
		assert.NotContains(t, []string{"alpha one", "alpha two"}, d)
	}
	assert.Contains(t, docs, "beta one")
}

func TestLoadTwiceNoDuplicates(t *testing.T) {
	mem := openTestMemory(t)
	ctx := context.Background()

	corpus := []Sample{{Text: "only entry"}}
	require.NoError(t, mem.Load(ctx, corpus))
	require.NoError(t, mem.Load(ctx, corpus))

	docs := mem.Query(ctx, "only entry", 10)
	count := 0
	for _, d := range docs {
		if d == "only entry" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
