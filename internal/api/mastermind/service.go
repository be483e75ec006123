// Package mastermind exposes the reply-suggestion endpoint.
package mastermind

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kuehq/kue-brain/internal/core"
	"github.com/kuehq/kue-brain/internal/engine"
	"github.com/kuehq/kue-brain/internal/loaders"
	"github.com/kuehq/kue-brain/internal/types"
	"github.com/kuehq/kue-brain/internal/utils"
)

type Service struct {
	engine *engine.Engine
	saver  *core.ExchangeSaver // nil when DATABASE_URL is unset
}

func NewService(eng *engine.Engine, saver *core.ExchangeSaver) *Service {
	return &Service{engine: eng, saver: saver}
}

func (s *Service) Handle(ctx context.Context, req *types.ReplyRequest) (*types.EngineResponse, error) {
	startTime := time.Now()

	resp, err := s.engine.Handle(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.saver != nil {
		id, idErr := uuid.NewV7()
		if idErr != nil {
			utils.Zlog.Error("Failed to generate exchange id", zap.Error(idErr))
		} else {
			s.saver.Save(loaders.NewExchangeRow(id.String(), req, resp, string(s.engine.Mode())))
		}
	}

	utils.Zlog.Info("Request completed",
		zap.String("category", req.Dossier.Category),
		zap.String("mode", string(s.engine.Mode())),
		zap.Int64("latency_ms", time.Since(startTime).Milliseconds()))

	return resp, nil
}
