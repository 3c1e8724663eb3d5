// Package store persists completed analyses in PostgreSQL. Persistence
// is best-effort from the pipeline's point of view: a failed save is
// reported as a soft flag on the result, never as a request failure.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// saveTimeout bounds one database write.
const saveTimeout = 10 * time.Second

// schemaDDL creates the analyses table. Concurrent analyses for the
// same user append distinct rows keyed by fresh ids; readers take the
// newest row, so no in-place overwrite can lose a concurrent write.
// Statements run one at a time; pgx's default protocol does not accept
// multi-statement strings.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS analyses (
		id UUID PRIMARY KEY,
		user_id TEXT NOT NULL,
		document JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS analyses_user_created_idx ON analyses (user_id, created_at DESC)`,
}

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and ensures the schema exists.
func New(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is required")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := pool.Exec(ctx, ddl); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return &Store{pool: pool}, nil
}

// SaveAnalysis stores one completed analysis for a user and returns the
// new row's id.
func (s *Store) SaveAnalysis(ctx context.Context, userID string, result *types.AnalysisResult) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(ctx, saveTimeout)
	defer cancel()

	document, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encoding analysis: %w", err)
	}

	id := uuid.New()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO analyses (id, user_id, document) VALUES ($1, $2, $3)`,
		id, userID, document,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting analysis: %w", err)
	}
	return id, nil
}

// LatestAnalysis returns the user's most recent analysis, or nil when
// none exists.
func (s *Store) LatestAnalysis(ctx context.Context, userID string) (*types.AnalysisResult, error) {
	var document []byte
	err := s.pool.QueryRow(ctx,
		`SELECT document FROM analyses WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`,
		userID,
	).Scan(&document)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying latest analysis: %w", err)
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(document, &result); err != nil {
		return nil, fmt.Errorf("decoding stored analysis: %w", err)
	}
	return &result, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
