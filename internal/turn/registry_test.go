package turn

import "testing"

func TestRegistryAddAssignsOrderAndStreams(t *testing.T) {
	reg := NewRegistry()
	p := reg.Add(ActorSpec{Label: "player", Decision: DecisionPlayer, MaxEnergy: 60, Mana: 100})
	z := reg.Add(ActorSpec{Decision: DecisionRandomWalk, MaxEnergy: 30})

	if p.ID != 0 || z.ID != 1 {
		t.Fatalf("expected sequential IDs, got %d,%d", p.ID, z.ID)
	}
	if z.Label != "A1" {
		t.Fatalf("expected generated label A1, got %q", z.Label)
	}
	if p.Stream != nil {
		t.Fatalf("player must not own a random stream")
	}
	if z.Stream == nil || z.Stream.Seed() != DefaultSeed {
		t.Fatalf("walker without seed should use DefaultSeed")
	}
	if p.Mana == nil || p.Mana.Current != 100 || z.Mana != nil {
		t.Fatalf("unexpected mana: player=%v zombie=%v", p.Mana, z.Mana)
	}
	if p.Energy.Current != 60 || z.Energy.Current != 30 {
		t.Fatalf("actors should start with full energy")
	}
	if got, ok := reg.ByLabel("player"); !ok || got != p {
		t.Fatalf("ByLabel failed")
	}
	if _, ok := reg.ByLabel("ghost"); ok {
		t.Fatalf("ByLabel found a missing actor")
	}
}

func TestRegistryDrainMoved(t *testing.T) {
	reg := NewRegistry()
	a := reg.Add(ActorSpec{Label: "a", MaxEnergy: 30})
	b := reg.Add(ActorSpec{Label: "b", MaxEnergy: 30})

	a.Move(Position{X: 1})
	b.Move(Position{})

	var drained []string
	reg.DrainMoved(func(x *Actor) { drained = append(drained, x.Label) })
	if len(drained) != 1 || drained[0] != "a" {
		t.Fatalf("expected only a drained, got %v", drained)
	}

	drained = drained[:0]
	reg.DrainMoved(func(x *Actor) { drained = append(drained, x.Label) })
	if len(drained) != 0 {
		t.Fatalf("expected flags cleared after drain, got %v", drained)
	}
}

func TestDispositionBetween(t *testing.T) {
	if DispositionBetween(FactionPlayer, FactionPlayer) != WorkWith {
		t.Fatalf("same faction should work together")
	}
	if DispositionBetween(FactionPlayer, FactionUndead) != Enemy {
		t.Fatalf("player and undead should be enemies")
	}
}
