package turn

// Position is an integer tile coordinate. The core enforces no bounds.
type Position struct {
	X, Y int
}

// Add returns p offset by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Energy is an actor's action budget for the current turn.
// Invariant: 0 <= Current <= Max.
type Energy struct {
	Max     int32
	Current int32
}

// NewEnergy returns a full budget. maxEnergy must be positive; the scheduler's
// behaviour with a non-positive max is undefined.
func NewEnergy(maxEnergy int32) Energy {
	return Energy{Max: maxEnergy, Current: maxEnergy}
}

// Spend deducts cost with a floor at zero and returns the amount actually spent.
func (e *Energy) Spend(cost int32) int32 {
	if cost <= 0 {
		return 0
	}
	spent := cost
	if e.Current < spent {
		spent = e.Current
	}
	e.Current -= spent
	return spent
}

// Refill restores the full budget.
func (e *Energy) Refill() {
	e.Current = e.Max
}

// Exhausted reports whether nothing is left to spend this turn.
func (e Energy) Exhausted() bool {
	return e.Current == 0
}

// DecisionKind selects the resolver that consumes an actor's turn.
type DecisionKind int

const (
	DecisionPlayer     DecisionKind = iota // driven by directional intents
	DecisionRandomWalk                     // driven by the actor's random stream
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionPlayer:
		return "player"
	case DecisionRandomWalk:
		return "random_walker"
	default:
		return "unknown"
	}
}

// Faction groups actors for display and disposition lookups.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionUndead
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionUndead:
		return "undead"
	default:
		return "unknown"
	}
}

// Disposition is how one faction regards another.
type Disposition int

const (
	// WorkWith factions help defend each other and forgive accidental hits.
	WorkWith Disposition = iota
	// Neutral factions only attack when attacked.
	Neutral
	// Enemy factions attack on sight.
	Enemy
)

func (d Disposition) String() string {
	switch d {
	case WorkWith:
		return "work_with"
	case Neutral:
		return "neutral"
	case Enemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// DispositionBetween returns how faction a regards faction b.
func DispositionBetween(a, b Faction) Disposition {
	if a == b {
		return WorkWith
	}
	return Enemy
}

// Mana is a spell resource. The scheduler never reads or writes it.
type Mana struct {
	Max     uint32
	Current uint32
}

// NewMana returns a full mana pool.
func NewMana(maxMana uint32) *Mana {
	return &Mana{Max: maxMana, Current: maxMana}
}

// Actor is a scheduling participant.
type Actor struct {
	ID       int
	Label    string
	Glyph    rune
	Faction  Faction
	Pos      Position
	Energy   Energy
	Decision DecisionKind
	Stream   *RandomStream // nil unless Decision == DecisionRandomWalk
	Mana     *Mana         // optional

	active bool
	moved  bool
}

// IsActive reports whether the actor holds the active marker for this tick.
func (a *Actor) IsActive() bool {
	return a.active
}

// Move offsets the actor's position. A zero delta is not recorded as a move.
func (a *Actor) Move(delta Position) {
	if delta == (Position{}) {
		return
	}
	a.Pos = a.Pos.Add(delta)
	a.moved = true
}

// ActorSpec is the creation record supplied by world setup.
type ActorSpec struct {
	Label     string
	Glyph     rune
	Faction   Faction
	Decision  DecisionKind
	Pos       Position
	MaxEnergy int32
	Mana      uint32 // 0 = no mana pool
	Seed      uint64 // random walkers only; 0 = DefaultSeed
}
