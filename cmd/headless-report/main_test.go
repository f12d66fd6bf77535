package main

import (
	"testing"

	"github.com/Garsondee/thaumafunge/internal/tuning"
	"github.com/Garsondee/thaumafunge/internal/turn"
)

func TestSuggestScenario(t *testing.T) {
	cases := map[string]string{
		"stal":    "stall",
		"defualt": "default",
		"Walker":  "walkers",
		"zzzzzzz": "",
	}
	for in, want := range cases {
		if got := suggestScenario(in); got != want {
			t.Errorf("suggestScenario(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRotatingIntent_HoldsEachEntry(t *testing.T) {
	for tick := 1; tick <= intentHold; tick++ {
		if got := rotatingIntent(tick); got != turn.IntentRight {
			t.Fatalf("tick %d: expected right, got %s", tick, got)
		}
	}
	if got := rotatingIntent(intentHold + 1); got != turn.IntentUp {
		t.Fatalf("expected up after the first hold, got %s", got)
	}
	wrap := intentHold*len(intentScript) + 1
	if got := rotatingIntent(wrap); got != turn.IntentRight {
		t.Fatalf("expected script to wrap at tick %d, got %s", wrap, got)
	}
}

func TestScenarioDefault_PlayerFollowsScript(t *testing.T) {
	ts, err := runScenario(scenarios["default"], tuning.Default(), turn.DefaultSeed, 5)
	if err != nil {
		t.Fatalf("runScenario: %v", err)
	}
	// Two moves right, zombie's step, refill, right, then up.
	if p := ts.Actor("player").Pos; p != (turn.Position{X: 4, Y: 2}) {
		t.Fatalf("expected player at (4,2), got (%d,%d)", p.X, p.Y)
	}
	if ts.Scheduler.Turn() != 1 {
		t.Fatalf("expected 1 completed turn, got %d", ts.Scheduler.Turn())
	}
}

func TestScenarioStall_WalkerNeverActs(t *testing.T) {
	ts, err := runScenario(scenarios["stall"], tuning.Default(), turn.DefaultSeed, 200)
	if err != nil {
		t.Fatalf("runScenario: %v", err)
	}
	rep := ts.Report()
	if rep.Turns != 0 || rep.FirstTurn != -1 {
		t.Fatalf("expected no refill, got turns=%d first=%d", rep.Turns, rep.FirstTurn)
	}
	z := ts.Actor("zombie")
	if z.Pos != (turn.Position{X: 15, Y: 15}) || z.Energy.Current != z.Energy.Max {
		t.Fatalf("zombie should be untouched, got pos=(%d,%d) energy=%d", z.Pos.X, z.Pos.Y, z.Energy.Current)
	}
	if rep.Actors[0].Passes != 200 {
		t.Fatalf("expected the player to pass every tick, got %d", rep.Actors[0].Passes)
	}
}

func TestScenarioWalkers_AllSpend(t *testing.T) {
	ts, err := runScenario(scenarios["walkers"], tuning.Default(), 7, 60)
	if err != nil {
		t.Fatalf("runScenario: %v", err)
	}
	if ts.Registry.Len() != 3 {
		t.Fatalf("expected 3 walkers, got %d", ts.Registry.Len())
	}
	// Six actions per turn; the first refill lands on tick 7, then every 6 ticks.
	if ts.Scheduler.Turn() != 9 {
		t.Fatalf("expected 9 turns in 60 ticks, got %d", ts.Scheduler.Turn())
	}
	for _, a := range ts.Report().Actors {
		if a.Moves == 0 || a.Passes != 0 {
			t.Fatalf("%s: expected moves and no passes, got moves=%d passes=%d", a.Label, a.Moves, a.Passes)
		}
	}
}

func TestScenarioDefault_SeedChangesWalkerPath(t *testing.T) {
	a, _ := runScenario(scenarios["default"], tuning.Default(), 1, 300)
	b, _ := runScenario(scenarios["default"], tuning.Default(), 1, 300)
	if a.Actor("zombie").Pos != b.Actor("zombie").Pos {
		t.Fatalf("same seed must reproduce the same walk")
	}
}
