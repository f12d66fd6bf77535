package turnlog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/Garsondee/thaumafunge/internal/turn"
)

// Store persists headless-run sim logs for later querying.
type Store struct {
	db *sql.DB
}

// RunMeta identifies one headless run.
type RunMeta struct {
	RunID    string
	Scenario string
	Seed     uint64
	Ticks    int
	Turns    uint64
}

func OpenSQLite(path string) (*Store, error) {
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
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			scenario TEXT NOT NULL,
			seed TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			turns INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS events (
			run_id TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			tick INTEGER NOT NULL,
			turn INTEGER NOT NULL,
			actor TEXT NOT NULL,
			faction TEXT NOT NULL,
			category TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			num REAL NOT NULL,
			PRIMARY KEY (run_id, seq)
		);`,
		`CREATE INDEX IF NOT EXISTS events_by_category ON events(run_id, category, key);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// RecordRun writes the run row and all of its entries in one transaction.
// Recording the same run ID again replaces the earlier rows.
func (s *Store) RecordRun(meta RunMeta, entries []turn.SimLogEntry) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM runs WHERE run_id=?`, meta.RunID); err != nil {
		return fmt.Errorf("clear run %s: %w", meta.RunID, err)
	}
	// Seeds use the full uint64 range, which SQLite INTEGER cannot hold.
	if _, err = tx.Exec(`INSERT INTO runs(run_id,scenario,seed,ticks,turns) VALUES(?,?,?,?,?)`,
		meta.RunID, meta.Scenario, fmt.Sprintf("%#x", meta.Seed), meta.Ticks, int64(meta.Turns)); err != nil {
		return fmt.Errorf("insert run %s: %w", meta.RunID, err)
	}

	stmt, err := tx.Prepare(`INSERT INTO events(run_id,seq,tick,turn,actor,faction,category,key,value,num) VALUES(?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, e := range entries {
		if _, err = stmt.Exec(meta.RunID, i, e.Tick, int64(e.Turn), e.Actor, e.Faction, e.Category, e.Key, e.Value, e.NumVal); err != nil {
			return fmt.Errorf("insert event %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// CountEvents returns how many events of category/key were recorded for a run.
// Empty category or key matches anything.
func (s *Store) CountEvents(runID, category, key string) (int, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM events WHERE run_id=? AND (?='' OR category=?) AND (?='' OR key=?)`,
		runID, category, category, key, key,
	).Scan(&n)
	return n, err
}

func (s *Store) Close() error {
	return s.db.Close()
}
