package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/sproutedu/sprout/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store owns the SQLite database: the ent client, the shared event
// sequence, and the repositories handed to the rest of the engine.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *eventSequence
}

// Open connects to the SQLite database at dsn, tunes it, runs ent's
// auto-migration, and sets up the event sequence.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := tuneSQLite(db); err != nil {
		db.Close()
		return nil, err
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newEventSequence(db)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Store{db: db, client: client, seq: seq}, nil
}

// Client exposes the ent client for queries the repos don't cover.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB exposes the raw connection pool.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close releases the database. The ent client owns the pool, so this
// closes both.
func (s *Store) Close() error {
	return s.client.Close()
}

// EventRepo returns the append-only event log.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client, seq: s.seq}
}

// SnapshotRepo returns snapshot persistence.
func (s *Store) SnapshotRepo() SnapshotRepo {
	return &snapshotRepo{client: s.client, seq: s.seq}
}

// PerformanceRepo returns per-(student, topic) performance persistence
// backed by snapshots.
func (s *Store) PerformanceRepo() *PerformanceRepo {
	return &PerformanceRepo{snaps: s.SnapshotRepo()}
}

// ProgressRepo returns reward progress persistence backed by snapshots.
func (s *Store) ProgressRepo() *ProgressRepo {
	return &ProgressRepo{snaps: s.SnapshotRepo()}
}

// tuneSQLite applies the pragmas a small concurrent service wants: WAL
// so readers don't block behind writes, a busy timeout instead of
// instant SQLITE_BUSY, and NORMAL sync, which WAL makes safe.
func tuneSQLite(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

// DefaultDBPath resolves where the database lives when nothing
// configures it: SPROUT_DB if set, else the XDG data dir
// (~/.local/share/sprout/sprout.db). The parent directory is created.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("SPROUT_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "sprout", "sprout.db")
	return p, EnsureDir(p)
}

// EnsureDir creates path's parent directory if needed.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
