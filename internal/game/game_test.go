package game

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/thaumafunge/internal/tuning"
	"github.com/Garsondee/thaumafunge/internal/turn"
)

func TestScreenPos_CentresCellFromBottomLeft(t *testing.T) {
	x, y := screenPos(turn.Position{X: 1, Y: 1}, 600)
	if x != 24 || y != 576 {
		t.Fatalf("expected (24,576), got (%.0f,%.0f)", x, y)
	}
	x, y = screenPos(turn.Position{X: 15, Y: 15}, 600)
	if x != 248 || y != 352 {
		t.Fatalf("expected (248,352), got (%.0f,%.0f)", x, y)
	}
}

func TestIntentFromKeys(t *testing.T) {
	held := map[ebiten.Key]bool{ebiten.KeyW: true, ebiten.KeyArrowLeft: true}
	in := intentFromKeys(func(k ebiten.Key) bool { return held[k] })
	if in != turn.IntentUp|turn.IntentLeft {
		t.Fatalf("expected up+left, got %s", in)
	}
	if got := intentFromKeys(func(ebiten.Key) bool { return false }); got.Any() {
		t.Fatalf("expected no intent, got %s", got)
	}
}

func TestNew_BuildsDefaultWorld(t *testing.T) {
	g, err := New(tuning.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.registry.Len() != 2 {
		t.Fatalf("expected 2 actors, got %d", g.registry.Len())
	}
	p, ok := g.registry.ByLabel("player")
	if !ok || p.Mana == nil || p.Mana.Current != 100 {
		t.Fatalf("expected player with 100 mana")
	}
	if sp := g.sprites[p.ID]; sp.x != 24 || sp.y != 576 {
		t.Fatalf("expected player sprite at (24,576), got %+v", sp)
	}
	if w, h := g.Layout(0, 0); w != 800 || h != 600 {
		t.Fatalf("expected 800x600 layout, got %dx%d", w, h)
	}
}

func TestNew_RejectsUnknownDecision(t *testing.T) {
	cfg := tuning.Default()
	cfg.Actors[1].Decision = "teleport"
	if _, err := New(cfg); err == nil {
		t.Fatalf("expected world setup error")
	}
}

func TestSyncSprites_OnlyMovedActors(t *testing.T) {
	g, err := New(tuning.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	z, _ := g.registry.ByLabel("zombie")
	p, _ := g.registry.ByLabel("player")
	g.sprites[p.ID] = sprite{x: -1, y: -1} // stale on purpose

	z.Move(turn.Position{X: 1})
	g.syncSprites()

	if sp := g.sprites[z.ID]; sp.x != 264 {
		t.Fatalf("expected zombie reprojected to x=264, got %+v", sp)
	}
	if sp := g.sprites[p.ID]; sp.x != -1 {
		t.Fatalf("unmoved player should not be reprojected, got %+v", sp)
	}
}

func TestActionLog_RecordAndWrap(t *testing.T) {
	al := NewActionLog()
	a := &turn.Actor{Label: "zombie", Pos: turn.Position{X: 15, Y: 16}}
	al.Record(turn.TickResult{Tick: 1, Turn: 1, NewTurn: true, Active: a,
		Action: turn.Action{Kind: turn.ActionMove, Dir: turn.DirNorth, Spent: 30}})
	al.Record(turn.TickResult{Tick: 2, Active: a, Action: turn.Action{Kind: turn.ActionPass}})

	got := al.Recent()
	if len(got) != 2 {
		t.Fatalf("expected turn marker + move, got %d entries", len(got))
	}
	if !strings.Contains(got[0].Message, "turn 1") || !strings.Contains(got[1].Message, "north") {
		t.Fatalf("unexpected entries: %+v", got)
	}

	for i := 0; i < logMaxEntries+5; i++ {
		al.Add(ActionEntry{Tick: 100 + i})
	}
	got = al.Recent()
	if len(got) != logMaxEntries || got[0].Tick != 105 || got[len(got)-1].Tick != 100+logMaxEntries+4 {
		t.Fatalf("ring buffer did not wrap: first=%d last=%d len=%d", got[0].Tick, got[len(got)-1].Tick, len(got))
	}
}

func TestDebugReport(t *testing.T) {
	g, err := New(tuning.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 3; i++ {
		g.scheduler.Advance(turn.IntentRight)
	}
	r := g.debugReport(0)
	for _, want := range []string{"seed=0xea4f7eecafef00d", "player", "zombie", "random_walker", "action"} {
		if !strings.Contains(r, want) {
			t.Fatalf("debug report missing %q:\n%s", want, r)
		}
	}
}

func TestCellAt_InvertsScreenPos(t *testing.T) {
	for _, p := range []turn.Position{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 15, Y: 15}, {X: 9, Y: 3}} {
		x, y := screenPos(p, 600)
		got, ok := cellAt(int(x), int(y), 600)
		if !ok || got != p {
			t.Fatalf("cellAt(screenPos(%v)) = %v, %v", p, got, ok)
		}
	}
	if _, ok := cellAt(10, 601, 600); ok {
		t.Fatalf("expected a click below the view to miss")
	}
}

func TestInspector_SelectAndViews(t *testing.T) {
	g, err := New(tuning.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !g.handleInspectorClick(248, 352) {
		t.Fatalf("expected click on (15,15) to select the zombie")
	}
	if g.inspector.selected.Label != "zombie" {
		t.Fatalf("selected %q", g.inspector.selected.Label)
	}
	curated := strings.Join(g.inspectorLines(), "\n")
	if !strings.Contains(curated, "energy: 30/30") || !strings.Contains(curated, "seed: 0xea4f7eecafef00d") {
		t.Fatalf("unexpected curated view:\n%s", curated)
	}

	g.inspector.rawView = true
	if lines := g.inspectorLines(); len(lines) != 1 || lines[0] != "(no events)" {
		t.Fatalf("expected empty raw view, got %v", lines)
	}
	for i := 0; i < 3; i++ {
		g.scheduler.Advance(turn.IntentNone)
	}
	// The idle player holds the turn, so the zombie still has no events.
	if lines := g.inspectorLines(); lines[0] != "(no events)" {
		t.Fatalf("expected no zombie events while the player stalls, got %v", lines)
	}

	if g.handleInspectorClick(700, 10) || g.inspector.selected != nil {
		t.Fatalf("expected click on empty space to deselect")
	}
}
