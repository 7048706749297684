// Package testutil provides test utilities for contextpack
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TestDB wraps a PostgreSQL connection pool for testing
type TestDB struct {
	Pool *pgxpool.Pool
}

// NewTestDB creates a test database connection from DATABASE_URL env var.
// Skips the test if DATABASE_URL is not set.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Fatalf("Failed to ping database: %v", err)
	}

	db := &TestDB{Pool: pool}
	if err := db.ensureSchema(ctx); err != nil {
		pool.Close()
		t.Fatalf("Failed to create test schema: %v", err)
	}

	return db
}

// Close closes the database connection
func (db *TestDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// ensureSchema creates the producer-owned tables if they do not exist.
// In production these are created by the summarization job's migrations.
func (db *TestDB) ensureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS contextpack_summaries (
			session_id    TEXT NOT NULL,
			hour_key      TEXT NOT NULL,
			period        TEXT NOT NULL,
			summary_text  TEXT NOT NULL,
			message_count INT NOT NULL DEFAULT 0,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (session_id, hour_key)
		)`,
		`CREATE TABLE IF NOT EXISTS contextpack_summary_state (
			session_id          TEXT PRIMARY KEY,
			last_summarized_at  TIMESTAMPTZ,
			last_processed_line INT NOT NULL DEFAULT 0
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// CleanTables truncates all tables for test isolation
func (db *TestDB) CleanTables(ctx context.Context) error {
	tables := []string{
		"contextpack_summaries",
		"contextpack_summary_state",
	}

	for _, table := range tables {
		_, err := db.Pool.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}

	return nil
}

// SeedSummary inserts one summary row, standing in for the producer.
func (db *TestDB) SeedSummary(ctx context.Context, t *testing.T, sessionID, hourKey, period, text string, messageCount int, createdAt time.Time) {
	t.Helper()

	_, err := db.Pool.Exec(ctx, `
		INSERT INTO contextpack_summaries (session_id, hour_key, period, summary_text, message_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, sessionID, hourKey, period, text, messageCount, createdAt)
	if err != nil {
		t.Fatalf("Failed to seed summary: %v", err)
	}
}

// SeedSummaryState inserts the per-session producer state row.
func (db *TestDB) SeedSummaryState(ctx context.Context, t *testing.T, sessionID string, lastSummarizedAt time.Time, lastProcessedLine int) {
	t.Helper()

	_, err := db.Pool.Exec(ctx, `
		INSERT INTO contextpack_summary_state (session_id, last_summarized_at, last_processed_line)
		VALUES ($1, $2, $3)
	`, sessionID, lastSummarizedAt, lastProcessedLine)
	if err != nil {
		t.Fatalf("Failed to seed summary state: %v", err)
	}
}
