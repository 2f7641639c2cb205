package golden

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"coasterpaint/internal/track"
)

// Store is the SQLite table of recorded tiles.
type Store struct {
	db *sql.DB
}

// Open opens or creates the store at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS tiles (
		ride TEXT NOT NULL,
		type TEXT NOT NULL,
		dir INTEGER NOT NULL,
		seq INTEGER NOT NULL,
		calls INTEGER NOT NULL,
		digest TEXT NOT NULL,
		PRIMARY KEY (ride, type, dir, seq)
	);`)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Put inserts or replaces entries in a single transaction.
func (s *Store) Put(ctx context.Context, entries []Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO tiles (ride, type, dir, seq, calls, digest) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Ride, e.Type.String(), int(e.Dir), int(e.Seq), e.Calls, e.Digest); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("put %s/%s/%d/%d: %w", e.Ride, e.Type, e.Dir, e.Seq, err)
		}
	}
	return tx.Commit()
}

// Get looks one tile up. ok is false when it was never recorded.
func (s *Store) Get(ctx context.Context, rideName string, t track.Type, dir track.Direction, seq uint8) (Entry, bool, error) {
	e := Entry{Ride: rideName, Type: t, Dir: dir, Seq: seq}
	err := s.db.QueryRowContext(ctx,
		`SELECT calls, digest FROM tiles WHERE ride = ? AND type = ? AND dir = ? AND seq = ?`,
		rideName, t.String(), int(dir), int(seq)).Scan(&e.Calls, &e.Digest)
	if errors.Is(err, sql.ErrNoRows) {
		return e, false, nil
	}
	if err != nil {
		return e, false, err
	}
	return e, true, nil
}

// Count returns the number of tiles recorded for a ride.
func (s *Store) Count(ctx context.Context, rideName string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tiles WHERE ride = ?`, rideName).Scan(&n)
	return n, err
}
