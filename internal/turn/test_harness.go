package turn

// TestSim is a headless scheduling harness used by tests and the headless
// report. It mirrors the game loop without any ebiten dependency and replays
// a scripted intent stream in place of the keyboard.
type TestSim struct {
	Registry  *Registry
	Scheduler *Scheduler
	SimLog    *SimLog
	Results   []TickResult

	seed     uint64
	cost     int32
	intentFn func(tick int) Intent
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // seed, cost, verbose; applied first
	simOptActor                      // add actors once the seed is known
	simOptInput                      // intent script
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSeed sets the stream seed for random walkers that do not carry their own.
func WithSeed(seed uint64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.seed = seed
	}}
}

// WithCost sets the per-action energy cost.
func WithCost(cost int32) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cost = cost
	}}
}

// WithVerbose enables per-tick selection and energy logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithPlayer adds a player-controlled actor at (x,y).
func WithPlayer(label string, x, y int, maxEnergy int32) SimOption {
	return WithActor(ActorSpec{
		Label:     label,
		Glyph:     '@',
		Faction:   FactionPlayer,
		Decision:  DecisionPlayer,
		Pos:       Position{X: x, Y: y},
		MaxEnergy: maxEnergy,
	})
}

// WithWalker adds a random-walk actor at (x,y).
func WithWalker(label string, x, y int, maxEnergy int32) SimOption {
	return WithActor(ActorSpec{
		Label:     label,
		Glyph:     'Z',
		Faction:   FactionUndead,
		Decision:  DecisionRandomWalk,
		Pos:       Position{X: x, Y: y},
		MaxEnergy: maxEnergy,
	})
}

// WithActor adds an actor from a full spec. Random walkers without a seed
// take the sim seed.
func WithActor(spec ActorSpec) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		if spec.Decision == DecisionRandomWalk && spec.Seed == 0 {
			spec.Seed = ts.seed
		}
		ts.Registry.Add(spec)
	}}
}

// WithIntents scripts the player's input: tick n (1-based) receives
// intents[n-1]; ticks past the end receive IntentNone.
func WithIntents(intents ...Intent) SimOption {
	script := append([]Intent(nil), intents...)
	return WithIntentFunc(func(tick int) Intent {
		if tick-1 < len(script) {
			return script[tick-1]
		}
		return IntentNone
	})
}

// WithIntentFunc supplies the player's input from a function of the tick.
func WithIntentFunc(fn func(tick int) Intent) SimOption {
	return SimOption{simOptInput, func(ts *TestSim) {
		ts.intentFn = fn
	}}
}

// NewTestSim constructs a TestSim from the given options in ordered passes:
//  1. Infrastructure (seed, cost, verbose)
//  2. Actors, in option order
//  3. Input script
//  4. Scheduler
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		Registry: NewRegistry(),
		SimLog:   NewSimLog(false),
		seed:     DefaultSeed,
		cost:     DefaultActionCost,
	}
	for _, kind := range []simOptionKind{simOptInfra, simOptActor, simOptInput} {
		for _, o := range opts {
			if o.kind == kind {
				o.fn(ts)
			}
		}
	}
	ts.Scheduler = NewScheduler(ts.Registry,
		WithActionCost(ts.cost),
		WithSimLog(ts.SimLog),
	)
	return ts
}

// Seed returns the default walker seed.
func (ts *TestSim) Seed() uint64 {
	return ts.seed
}

// IntentAt returns the scripted intent for a 1-based tick.
func (ts *TestSim) IntentAt(tick int) Intent {
	if ts.intentFn == nil {
		return IntentNone
	}
	return ts.intentFn(tick)
}

// Step advances one tick and returns its result.
func (ts *TestSim) Step() TickResult {
	res := ts.Scheduler.Advance(ts.IntentAt(ts.Scheduler.Tick() + 1))
	ts.Results = append(ts.Results, res)
	return res
}

// RunTicks advances the simulation n ticks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Step()
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Step()
		if predicate(ts) {
			return ts.Scheduler.Tick()
		}
	}
	return -1
}

// CurrentTick returns the current simulation tick.
func (ts *TestSim) CurrentTick() int {
	return ts.Scheduler.Tick()
}

// Actor looks an actor up by label and panics if it is missing; harness
// callers name actors they created themselves.
func (ts *TestSim) Actor(label string) *Actor {
	a, ok := ts.Registry.ByLabel(label)
	if !ok {
		panic("turn: no actor labelled " + label)
	}
	return a
}

// SimSnapshot is a lightweight copy of the registry at one tick.
type SimSnapshot struct {
	Tick   int
	Turn   uint64
	Actors []ActorSnapshot
}

// ActorSnapshot is a copy of one actor's scheduling state.
type ActorSnapshot struct {
	ID     int
	Label  string
	Pos    Position
	Energy Energy
	Active bool
}

// Snapshot returns the current state of all actors.
func (ts *TestSim) Snapshot() SimSnapshot {
	snap := SimSnapshot{Tick: ts.Scheduler.Tick(), Turn: ts.Scheduler.Turn()}
	for _, a := range ts.Registry.Actors() {
		snap.Actors = append(snap.Actors, ActorSnapshot{
			ID:     a.ID,
			Label:  a.Label,
			Pos:    a.Pos,
			Energy: a.Energy,
			Active: a.active,
		})
	}
	return snap
}
