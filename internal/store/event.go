package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// eventSequence hands out the ordering numbers shared by every event
// table. Events of different kinds live in separate ent tables, so
// auto-increment IDs only order events within a kind; replay and
// snapshots need one timeline per database. A single-row SQLite table
// carries the counter. ent has no notion of such a counter, so the row
// is managed with raw SQL on the same connection pool.
type eventSequence struct {
	mu sync.Mutex
	db *sql.DB
}

func newEventSequence(db *sql.DB) (*eventSequence, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		last_val INTEGER NOT NULL DEFAULT 0
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}
	return &eventSequence{db: db}, nil
}

// Next assigns the next sequence number, starting from 1. The upsert
// seeds the row on first use and makes the increment atomic in the
// database; the mutex keeps the pool from racing two writers into
// SQLITE_BUSY.
func (s *eventSequence) Next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var seq int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO global_sequence (id, last_val) VALUES (1, 1)
		ON CONFLICT (id) DO UPDATE SET last_val = last_val + 1
		RETURNING last_val`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("advance sequence: %w", err)
	}
	return seq, nil
}
