package tuning

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Garsondee/thaumafunge/internal/turn"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_SampleConfigMatchesDefault(t *testing.T) {
	got, err := Load(filepath.Join("..", "..", "configs", "tuning.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if got.Seed != want.Seed || got.ActionCost != want.ActionCost || got.Window != want.Window || got.Floor != want.Floor {
		t.Fatalf("sample config drifted from Default: %+v", got)
	}
	if len(got.Actors) != len(want.Actors) {
		t.Fatalf("expected %d actors, got %d", len(want.Actors), len(got.Actors))
	}
	for i := range want.Actors {
		if got.Actors[i] != want.Actors[i] {
			t.Errorf("actor %d: expected %+v, got %+v", i, want.Actors[i], got.Actors[i])
		}
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, "action_cost: 10\n")
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ActionCost != 10 {
		t.Fatalf("expected action_cost 10, got %d", got.ActionCost)
	}
	if got.Window.Title != "Thaumafunge" || len(got.Actors) != 2 {
		t.Fatalf("expected defaults to survive a partial file: %+v", got)
	}
}

func TestLoad_UnknownDecision(t *testing.T) {
	path := writeFile(t, `
actors:
  - label: ghost
    decision: teleport
    max_energy: 30
`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "unknown decision") {
		t.Fatalf("expected unknown decision error, got %v", err)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeFile(t, "actors: [\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "tuning.yaml") {
		t.Fatalf("expected wrapped yaml error, got %v", err)
	}
}

func TestActorSpecs_DefaultWorld(t *testing.T) {
	specs, err := Default().ActorSpecs()
	if err != nil {
		t.Fatalf("ActorSpecs: %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("expected 2 specs, got %d", len(specs))
	}
	p, z := specs[0], specs[1]
	if p.Decision != turn.DecisionPlayer || p.Glyph != '@' || p.Pos != (turn.Position{X: 1, Y: 1}) || p.MaxEnergy != 60 || p.Mana != 100 {
		t.Fatalf("unexpected player spec: %+v", p)
	}
	if z.Decision != turn.DecisionRandomWalk || z.Faction != turn.FactionUndead || z.Seed != turn.DefaultSeed || z.MaxEnergy != 30 {
		t.Fatalf("unexpected zombie spec: %+v", z)
	}
	if p.Seed != 0 {
		t.Fatalf("player should not inherit a stream seed")
	}
}
