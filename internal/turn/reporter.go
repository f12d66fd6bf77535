package turn

import (
	"fmt"
	"strings"
)

// ActorReport aggregates one actor's activity over a run.
type ActorReport struct {
	Label    string
	Decision DecisionKind
	Acted    int // ticks on which the actor was active
	Moves    int
	Passes   int
	Waits    int
	Spent    int64
	Distance int // manhattan length of the walked path
	Final    Position
	Energy   Energy
}

// RunReport is a summary of a headless run.
type RunReport struct {
	Seed       uint64
	Ticks      int
	Turns      uint64
	IdleTicks  int // ticks with no active actor
	FirstTurn  int // tick of the first refill, -1 if none
	LongestRun int // most consecutive ticks one actor stayed active
	Actors     []ActorReport
}

// Report summarises the ticks run so far.
func (ts *TestSim) Report() RunReport {
	rep := RunReport{
		Seed:      ts.seed,
		Ticks:     ts.Scheduler.Tick(),
		Turns:     ts.Scheduler.Turn(),
		FirstTurn: -1,
	}
	byID := make(map[int]*ActorReport, ts.Registry.Len())
	for _, a := range ts.Registry.Actors() {
		rep.Actors = append(rep.Actors, ActorReport{
			Label:    a.Label,
			Decision: a.Decision,
			Final:    a.Pos,
			Energy:   a.Energy,
		})
	}
	for i := range rep.Actors {
		byID[ts.Registry.Actors()[i].ID] = &rep.Actors[i]
	}

	run, lastID := 0, -1
	for _, r := range ts.Results {
		if r.NewTurn && rep.FirstTurn < 0 {
			rep.FirstTurn = r.Tick
		}
		if r.Active == nil {
			rep.IdleTicks++
			run, lastID = 0, -1
			continue
		}
		if r.Active.ID == lastID {
			run++
		} else {
			run, lastID = 1, r.Active.ID
		}
		if run > rep.LongestRun {
			rep.LongestRun = run
		}

		ar := byID[r.Active.ID]
		ar.Acted++
		ar.Spent += int64(r.Action.Spent)
		switch r.Action.Kind {
		case ActionMove:
			ar.Moves++
			ar.Distance += abs(r.Action.Delta.X) + abs(r.Action.Delta.Y)
		case ActionPass:
			ar.Passes++
		case ActionWait:
			ar.Waits++
		}
	}
	return rep
}

// FormatReport renders a report as aligned text.
func FormatReport(rep RunReport) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ticks=%d turns=%d idle_ticks=%d first_turn=%d longest_active_run=%d\n",
		rep.Ticks, rep.Turns, rep.IdleTicks, rep.FirstTurn, rep.LongestRun)
	for _, a := range rep.Actors {
		fmt.Fprintf(&sb, "  %-8s %-13s acted=%-4d moves=%-4d passes=%-4d waits=%-4d spent=%-6d dist=%-4d pos=(%d,%d) energy=%d/%d\n",
			a.Label, a.Decision, a.Acted, a.Moves, a.Passes, a.Waits, a.Spent, a.Distance,
			a.Final.X, a.Final.Y, a.Energy.Current, a.Energy.Max)
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
