package loaders

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kuehq/kue-brain/internal/types"
)

type PostgresClient struct {
	dsn  string
	pool *pgxpool.Pool
}

// ExchangeRow is one request/reply pair persisted for history.
type ExchangeRow struct {
	ID           string
	Category     string
	IncomingText string
	Replies      map[string]string
	Mode         string
	CreatedAt    time.Time
}

func NewPostgresClient(dsn string) (*PostgresClient, error) {
	client := &PostgresClient{
		dsn: dsn,
	}

	pool, err := client.createConnectionPool()
	if err != nil {
		return nil, err
	}

	client.pool = pool
	return client, nil
}

func (c *PostgresClient) createConnectionPool() (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(c.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Postgres DSN: %w", err)
	}

	cfg.MaxConns = 4
	cfg.MinConns = 1
	cfg.HealthCheckPeriod = 30 * time.Second
	cfg.MaxConnLifetime = 60 * time.Minute
	cfg.MaxConnIdleTime = 15 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping Postgres: %w", err)
	}

	if err := ensureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

func ensureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS exchanges (
            id UUID PRIMARY KEY,
            category TEXT NOT NULL,
            incoming_text TEXT NOT NULL,
            replies JSONB NOT NULL,
            mode TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL
        )
    `)
	if err != nil {
		return fmt.Errorf("failed to create exchanges table: %w", err)
	}
	return nil
}

func (c *PostgresClient) Close() error {
	if c.pool != nil {
		c.pool.Close()
	}
	return nil
}

func (c *PostgresClient) GetPool() *pgxpool.Pool {
	return c.pool
}

// BatchInsertExchanges inserts a batch of request/reply exchanges.
func (c *PostgresClient) BatchInsertExchanges(ctx context.Context, rows []ExchangeRow) error {
	if len(rows) == 0 {
		return nil
	}

	query := `
        INSERT INTO exchanges (id, category, incoming_text, replies, mode, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (id) DO NOTHING
    `

	for _, r := range rows {
		repliesJSON, err := json.Marshal(r.Replies)
		if err != nil {
			return fmt.Errorf("failed to marshal replies: %w", err)
		}
		_, err = c.pool.Exec(ctx, query,
			r.ID,
			r.Category,
			r.IncomingText,
			repliesJSON,
			r.Mode,
			r.CreatedAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert exchange %s: %w", r.ID, err)
		}
	}
	return nil
}

// NewExchangeRow assembles a history row from a handled request.
func NewExchangeRow(id string, req *types.ReplyRequest, resp *types.EngineResponse, mode string) ExchangeRow {
	return ExchangeRow{
		ID:           id,
		Category:     req.Dossier.Category,
		IncomingText: req.IncomingText,
		Replies:      resp.Replies,
		Mode:         mode,
		CreatedAt:    time.Now(),
	}
}
