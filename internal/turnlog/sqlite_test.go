package turnlog

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/Garsondee/thaumafunge/internal/turn"
)

func TestStore_RecordRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runs", "turns.db")

	ts := turn.NewTestSim(
		turn.WithPlayer("player", 1, 1, 60),
		turn.WithWalker("zombie", 15, 15, 30),
		turn.WithIntentFunc(func(int) turn.Intent { return turn.IntentRight }),
	)
	ts.RunTicks(9)

	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	meta := RunMeta{RunID: "run-1", Scenario: "default", Seed: turn.DefaultSeed, Ticks: 9, Turns: ts.Scheduler.Turn()}
	if err := store.RecordRun(meta, ts.SimLog.Entries()); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	// Recording again replaces rather than duplicating.
	if err := store.RecordRun(meta, ts.SimLog.Entries()); err != nil {
		t.Fatalf("RecordRun (again): %v", err)
	}

	n, err := store.CountEvents("run-1", "action", "move")
	if err != nil {
		t.Fatalf("CountEvents: %v", err)
	}
	if n != 9 {
		t.Fatalf("expected 9 move events, got %d", n)
	}
	all, err := store.CountEvents("run-1", "", "")
	if err != nil {
		t.Fatalf("CountEvents: %v", err)
	}
	if all != len(ts.SimLog.Entries()) {
		t.Fatalf("expected %d events, got %d", len(ts.SimLog.Entries()), all)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	defer db.Close()

	var (
		scenario string
		seed     string
		turns    int64
	)
	row := db.QueryRow(`SELECT scenario,seed,turns FROM runs WHERE run_id='run-1'`)
	if err := row.Scan(&scenario, &seed, &turns); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if scenario != "default" || seed != "0xea4f7eecafef00d" || uint64(turns) != ts.Scheduler.Turn() {
		t.Fatalf("row mismatch: scenario=%q seed=%q turns=%d", scenario, seed, turns)
	}
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	if _, err := OpenSQLite(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
