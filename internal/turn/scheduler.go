package turn

import "fmt"

// TickResult summarises one Advance call.
type TickResult struct {
	Tick    int
	Turn    uint64
	NewTurn bool   // the refill check fired this tick
	Active  *Actor // nil when no actor had energy
	Action  Action
}

// Scheduler runs the energy round-robin. It holds no actor state of its own;
// everything is read and written through the registry.
type Scheduler struct {
	registry  *Registry
	resolvers map[DecisionKind]Resolver
	cost      int32
	log       *SimLog

	tick int
	turn uint64
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithActionCost sets the energy spent per action by the built-in resolvers.
func WithActionCost(cost int32) SchedulerOption {
	return func(s *Scheduler) {
		s.cost = cost
	}
}

// WithSimLog records scheduling events to log.
func WithSimLog(log *SimLog) SchedulerOption {
	return func(s *Scheduler) {
		s.log = log
	}
}

// WithResolver installs or replaces the resolver for a decision kind.
func WithResolver(kind DecisionKind, r Resolver) SchedulerOption {
	return func(s *Scheduler) {
		s.resolvers[kind] = r
	}
}

// NewScheduler creates a scheduler over reg. The player and random-walk
// resolvers are installed by default.
func NewScheduler(reg *Registry, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		registry:  reg,
		resolvers: make(map[DecisionKind]Resolver),
		cost:      DefaultActionCost,
	}
	for _, o := range opts {
		o(s)
	}
	// Defaults go in after options so WithResolver wins.
	if _, ok := s.resolvers[DecisionPlayer]; !ok {
		s.resolvers[DecisionPlayer] = PlayerResolver{Cost: s.cost}
	}
	if _, ok := s.resolvers[DecisionRandomWalk]; !ok {
		s.resolvers[DecisionRandomWalk] = RandomWalkResolver{Cost: s.cost}
	}
	return s
}

// Registry returns the registry the scheduler drives.
func (s *Scheduler) Registry() *Registry {
	return s.registry
}

// Turn returns the number of refills so far.
func (s *Scheduler) Turn() uint64 {
	return s.turn
}

// Tick returns the number of Advance calls so far.
func (s *Scheduler) Tick() int {
	return s.tick
}

// ActionCost returns the configured per-action energy cost.
func (s *Scheduler) ActionCost() int32 {
	return s.cost
}

// Advance runs one tick: clear the active marker, refill if every actor is
// exhausted, mark the first actor with energy, then resolve its turn with in.
// The phase order is fixed.
func (s *Scheduler) Advance(in Intent) TickResult {
	s.tick++

	s.clearActive()
	newTurn := s.checkNewTurn()
	active := s.selectActive()

	res := TickResult{
		Tick:    s.tick,
		Turn:    s.turn,
		NewTurn: newTurn,
		Active:  active,
	}
	if active != nil {
		res.Action = s.resolveTurn(active, in)
	}
	s.logEnergy()
	return res
}

// clearActive removes the marker from whichever actor holds it.
func (s *Scheduler) clearActive() {
	s.registry.clearActive()
}

// checkNewTurn refills every actor and bumps the turn counter when nobody has
// energy left. A single actor with energy blocks the refill.
func (s *Scheduler) checkNewTurn() bool {
	for _, a := range s.registry.Actors() {
		if a.Energy.Current > 0 {
			return false
		}
	}
	s.turn++
	for _, a := range s.registry.Actors() {
		a.Energy.Refill()
	}
	if s.log != nil {
		s.log.Add(s.tick, s.turn, "--", "--", "turn", "new_turn",
			fmt.Sprintf("turn %d: %d actors refilled", s.turn, s.registry.Len()), float64(s.turn))
	}
	return true
}

// selectActive marks the first actor in enumeration order that has energy.
func (s *Scheduler) selectActive() *Actor {
	for _, a := range s.registry.Actors() {
		if a.Energy.Current != 0 {
			s.registry.markActive(a)
			if s.log != nil {
				s.log.AddVerbose(s.tick, s.turn, a.Label, a.Faction.String(), "select", "active",
					fmt.Sprintf("energy %d/%d", a.Energy.Current, a.Energy.Max), float64(a.Energy.Current))
			}
			return a
		}
	}
	return nil
}

// resolveTurn dispatches to the resolver for the actor's decision kind.
func (s *Scheduler) resolveTurn(a *Actor, in Intent) Action {
	r, ok := s.resolvers[a.Decision]
	if !ok {
		return Action{}
	}
	act := r.Resolve(a, in)
	if s.log != nil {
		s.logAction(a, act)
	}
	return act
}

func (s *Scheduler) logAction(a *Actor, act Action) {
	var value string
	switch {
	case act.Kind == ActionPass:
		value = "no intent"
	case act.Intent.Any():
		value = fmt.Sprintf("%s → (%d,%d) spent %d", act.Intent, a.Pos.X, a.Pos.Y, act.Spent)
	case act.Kind == ActionMove:
		value = fmt.Sprintf("%s → (%d,%d) spent %d", act.Dir, a.Pos.X, a.Pos.Y, act.Spent)
	default:
		value = fmt.Sprintf("spent %d", act.Spent)
	}
	if act.Kind == ActionPass {
		s.log.AddVerbose(s.tick, s.turn, a.Label, a.Faction.String(), "action", act.Kind.String(), value, 0)
		return
	}
	s.log.Add(s.tick, s.turn, a.Label, a.Faction.String(), "action", act.Kind.String(), value, float64(act.Spent))
}

func (s *Scheduler) logEnergy() {
	if s.log == nil || !s.log.verbose {
		return
	}
	for _, a := range s.registry.Actors() {
		s.log.AddVerbose(s.tick, s.turn, a.Label, a.Faction.String(), "energy", "level",
			fmt.Sprintf("%d/%d", a.Energy.Current, a.Energy.Max), float64(a.Energy.Current))
	}
}
