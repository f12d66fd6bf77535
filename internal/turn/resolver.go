package turn

// DefaultActionCost is the energy every completed action consumes.
const DefaultActionCost int32 = 30

// ActionKind describes what a resolver did with the active actor's turn.
type ActionKind int

const (
	ActionNone ActionKind = iota // no resolver ran this tick
	ActionPass                   // player held no key; nothing spent
	ActionMove                   // moved, then spent energy
	ActionWait                   // spent energy without moving
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionPass:
		return "pass"
	case ActionMove:
		return "move"
	case ActionWait:
		return "wait"
	default:
		return "unknown"
	}
}

// Action is the outcome of one resolver call.
type Action struct {
	Kind   ActionKind
	Delta  Position
	Dir    Direction // random walkers only
	Intent Intent    // player only
	Spent  int32
}

// Resolver consumes one turn of the active actor. Implementations may mutate
// the actor's position and energy but never its active marker.
type Resolver interface {
	Resolve(a *Actor, in Intent) Action
}

// PlayerResolver moves the actor by the held directions. Holding nothing is a
// free pass: the scheduler reselects the same actor next tick.
type PlayerResolver struct {
	Cost int32
}

func (r PlayerResolver) Resolve(a *Actor, in Intent) Action {
	if !in.Any() {
		return Action{Kind: ActionPass}
	}
	delta := in.Delta()
	a.Move(delta)
	return Action{
		Kind:   ActionMove,
		Delta:  delta,
		Intent: in,
		Spent:  a.Energy.Spend(r.Cost),
	}
}

// RandomWalkResolver steps the actor one tile in a direction drawn from its
// stream. It always spends energy; a walker cannot pass.
type RandomWalkResolver struct {
	Cost int32
}

func (r RandomWalkResolver) Resolve(a *Actor, _ Intent) Action {
	if a.Stream == nil {
		return Action{Kind: ActionWait, Spent: a.Energy.Spend(r.Cost)}
	}
	dir := a.Stream.Direction()
	delta := dir.Delta()
	a.Move(delta)
	return Action{
		Kind:  ActionMove,
		Delta: delta,
		Dir:   dir,
		Spent: a.Energy.Spend(r.Cost),
	}
}
