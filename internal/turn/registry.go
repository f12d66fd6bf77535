package turn

import "fmt"

// Registry owns every live actor. Enumeration order is insertion order and is
// the scheduler's only tie-break.
type Registry struct {
	actors []*Actor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add creates an actor from spec and appends it to the enumeration order.
func (r *Registry) Add(spec ActorSpec) *Actor {
	id := len(r.actors)
	label := spec.Label
	if label == "" {
		label = fmt.Sprintf("A%d", id)
	}
	a := &Actor{
		ID:       id,
		Label:    label,
		Glyph:    spec.Glyph,
		Faction:  spec.Faction,
		Pos:      spec.Pos,
		Energy:   NewEnergy(spec.MaxEnergy),
		Decision: spec.Decision,
	}
	if spec.Decision == DecisionRandomWalk {
		seed := spec.Seed
		if seed == 0 {
			seed = DefaultSeed
		}
		a.Stream = NewRandomStream(seed)
	}
	if spec.Mana > 0 {
		a.Mana = NewMana(spec.Mana)
	}
	r.actors = append(r.actors, a)
	return a
}

// Actors returns the actors in enumeration order. Callers must not reorder it.
func (r *Registry) Actors() []*Actor {
	return r.actors
}

// Len returns the number of actors.
func (r *Registry) Len() int {
	return len(r.actors)
}

// ByLabel looks an actor up by label.
func (r *Registry) ByLabel(label string) (*Actor, bool) {
	for _, a := range r.actors {
		if a.Label == label {
			return a, true
		}
	}
	return nil, false
}

// Active returns the actor holding the active marker, or nil.
func (r *Registry) Active() *Actor {
	for _, a := range r.actors {
		if a.active {
			return a
		}
	}
	return nil
}

// DrainMoved calls fn for every actor whose position changed since the last
// drain and clears the change flags.
func (r *Registry) DrainMoved(fn func(*Actor)) {
	for _, a := range r.actors {
		if !a.moved {
			continue
		}
		a.moved = false
		fn(a)
	}
}

func (r *Registry) markActive(a *Actor) {
	a.active = true
}

func (r *Registry) clearActive() int {
	cleared := 0
	for _, a := range r.actors {
		if a.active {
			a.active = false
			cleared++
		}
	}
	return cleared
}
