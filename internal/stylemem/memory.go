// Package stylemem keeps past-message style samples in an embedded vector
// store and serves nearest-neighbor lookups for prompt few-shot context.
package stylemem

import (
	"context"
	"fmt"
	"strconv"

	"github.com/liliang-cn/sqvect/v2/pkg/core"
	"github.com/liliang-cn/sqvect/v2/pkg/sqvect"
	"go.uber.org/zap"

	"github.com/kuehq/kue-brain/internal/utils"
)

const collectionName = "user_style"

// Sample is one historical message used as a style reference.
type Sample struct {
	Text string `json:"text"`
	Tag  string `json:"tag"`
}

// Memory wraps a single sqvect collection. Writes happen once at startup via
// Load; Query is safe for concurrent use afterwards.
type Memory struct {
	db       *sqvect.DB
	embedder sqvect.Embedder
}

// Open opens (or creates) the style store at path, indexing text through emb.
func Open(path string, emb sqvect.Embedder) (*Memory, error) {
	db, err := sqvect.Open(sqvect.DefaultConfig(path), sqvect.WithEmbedder(emb))
	if err != nil {
		return nil, fmt.Errorf("failed to open style store: %w", err)
	}
	return &Memory{db: db, embedder: emb}, nil
}

// Load replaces the whole collection with the given samples. Entries are keyed
// by positional index, so reloading the same corpus never duplicates rows.
func (m *Memory) Load(ctx context.Context, samples []Sample) error {
	// A missing collection on first load is fine.
	if err := m.db.Vector().DeleteCollection(ctx, collectionName); err != nil {
		utils.Zlog.Debug("style collection not cleared", zap.Error(err))
	}

	for i, s := range samples {
		vec, err := m.embedder.Embed(ctx, s.Text)
		if err != nil {
			return fmt.Errorf("failed to embed sample %d: %w", i, err)
		}
		tag := s.Tag
		if tag == "" {
			tag = "general"
		}
		err = m.db.Vector().Upsert(ctx, &core.Embedding{
			ID:         strconv.Itoa(i),
			Collection: collectionName,
			Vector:     vec,
			Content:    s.Text,
			Metadata:   map[string]string{"tag": tag},
		})
		if err != nil {
			return fmt.Errorf("failed to store sample %d: %w", i, err)
		}
	}

	utils.Zlog.Info("Style memory loaded", zap.Int("samples", len(samples)))
	return nil
}

// Query returns up to k stored texts nearest to text. It never fails: an empty
// collection or a backend error both yield an empty slice.
func (m *Memory) Query(ctx context.Context, text string, k int) []string {
	if text == "" || k <= 0 {
		return nil
	}

	results, err := m.db.Quick().SearchTextInCollection(ctx, collectionName, text, k)
	if err != nil {
		utils.Zlog.Warn("style query failed, continuing without samples", zap.Error(err))
		return nil
	}

	docs := make([]string, 0, len(results))
	for _, r := range results {
		docs = append(docs, r.Content)
	}
	return docs
}

func (m *Memory) Close() error {
	return m.db.Close()
}
