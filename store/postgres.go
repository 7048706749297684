package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore reads per-session summary records from PostgreSQL, for
// deployments where the summarization producer writes rows instead of files.
// All access is read-only; the producer owns the schema and its contents:
//
//	CREATE TABLE contextpack_summaries (
//	    session_id    TEXT NOT NULL,
//	    hour_key      TEXT NOT NULL,
//	    period        TEXT NOT NULL,
//	    summary_text  TEXT NOT NULL,
//	    message_count INT NOT NULL DEFAULT 0,
//	    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
//	    PRIMARY KEY (session_id, hour_key)
//	);
//
//	CREATE TABLE contextpack_summary_state (
//	    session_id          TEXT PRIMARY KEY,
//	    last_summarized_at  TIMESTAMPTZ,
//	    last_processed_line INT NOT NULL DEFAULT 0
//	);
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed summary store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// LoadSummaries loads the session's summaries in chronological order.
// A session with no rows in either table returns (nil, nil). Query failures
// are returned to the caller, which treats them the same as absence.
func (s *PostgresStore) LoadSummaries(ctx context.Context, sessionID string) (*SummaryFile, error) {
	query := `
		SELECT period, hour_key, summary_text, message_count, created_at
		FROM contextpack_summaries
		WHERE session_id = $1
		ORDER BY hour_key ASC, created_at ASC
	`

	rows, err := s.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query summaries: %w", err)
	}
	defer rows.Close()

	var summaries []StoredSummary
	for rows.Next() {
		var summary StoredSummary
		err := rows.Scan(
			&summary.Period,
			&summary.HourKey,
			&summary.Text,
			&summary.MessageCount,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating summaries: %w", err)
	}

	file := &SummaryFile{Summaries: summaries}

	stateQuery := `
		SELECT last_summarized_at, last_processed_line
		FROM contextpack_summary_state
		WHERE session_id = $1
	`

	err = s.pool.QueryRow(ctx, stateQuery, sessionID).Scan(
		&file.LastSummarizedAt,
		&file.LastProcessedLine,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		if len(summaries) == 0 {
			return nil, nil
		}
		return file, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get summary state: %w", err)
	}

	return file, nil
}
