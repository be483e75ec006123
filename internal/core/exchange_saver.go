// Package core holds the background exchange-history writer. Saving history
// is best-effort and never blocks the request path.
package core

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kuehq/kue-brain/internal/loaders"
	"github.com/kuehq/kue-brain/internal/utils"
)

const (
	defaultBatchSize       = 100
	defaultFlushInterval   = 500 * time.Millisecond
	defaultChannelCapacity = 1000
)

// ExchangeSaver batches exchange rows and flushes them to Postgres.
type ExchangeSaver struct {
	db            *loaders.PostgresClient
	ch            chan loaders.ExchangeRow
	batchSize     int
	flushInterval time.Duration
	stopCh        chan struct{}
	stoppedCh     chan struct{}
}

func NewExchangeSaver(db *loaders.PostgresClient) *ExchangeSaver {
	s := &ExchangeSaver{
		db:            db,
		ch:            make(chan loaders.ExchangeRow, defaultChannelCapacity),
		batchSize:     defaultBatchSize,
		flushInterval: defaultFlushInterval,
		stopCh:        make(chan struct{}),
		stoppedCh:     make(chan struct{}),
	}
	go s.run()
	return s
}

// Save enqueues a row. Rows are dropped when the queue is full; history is
// not worth backpressure on the request path.
func (s *ExchangeSaver) Save(row loaders.ExchangeRow) {
	select {
	case s.ch <- row:
	default:
		utils.Zlog.Warn("Exchange history queue full, dropping row", zap.String("id", row.ID))
	}
}

func (s *ExchangeSaver) run() {
	defer close(s.stoppedCh)
	batch := make([]loaders.ExchangeRow, 0, s.batchSize)
	ticker := time.NewTicker(s.flushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.db.BatchInsertExchanges(ctx, batch); err != nil {
			utils.Zlog.Error("Failed to batch insert exchanges", zap.Error(err), zap.Int("count", len(batch)))
		}
		batch = batch[:0]
	}

	for {
		select {
		case row := <-s.ch:
			batch = append(batch, row)
			if len(batch) >= s.batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.stopCh:
			// Drain whatever is queued, then flush once.
			for {
				select {
				case row := <-s.ch:
					batch = append(batch, row)
				default:
					flush()
					return
				}
			}
		}
	}
}

// Stop flushes pending rows and stops the background goroutine.
func (s *ExchangeSaver) Stop() {
	close(s.stopCh)
	<-s.stoppedCh
}
