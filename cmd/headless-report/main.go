package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/Garsondee/thaumafunge/internal/tuning"
	"github.com/Garsondee/thaumafunge/internal/turn"
	"github.com/Garsondee/thaumafunge/internal/turnlog"
)

// scenario builds the harness options for one run.
type scenario struct {
	desc  string
	build func(cfg tuning.Tuning, seed uint64) ([]turn.SimOption, error)
}

var scenarios = map[string]scenario{
	"default": {
		desc:  "configured world; the player follows a rotating intent script",
		build: configuredWorld(rotatingIntent),
	},
	"stall": {
		desc:  "configured world; the player never presses a key",
		build: configuredWorld(nil),
	},
	"walkers": {
		desc:  "three random walkers and no player",
		build: threeWalkers,
	},
}

// intentScript is cycled by the default scenario, one entry per intentHold ticks.
var intentScript = []turn.Intent{
	turn.IntentRight,
	turn.IntentUp,
	turn.IntentUp | turn.IntentRight,
	turn.IntentLeft,
	turn.IntentDown,
}

const intentHold = 4

func rotatingIntent(tick int) turn.Intent {
	return intentScript[((tick-1)/intentHold)%len(intentScript)]
}

type runStats struct {
	runIndex int
	seed     uint64
	report   turn.RunReport
	events   int
}

func main() {
	var runs int
	var ticks int
	var seedBase uint64
	var seedStep uint64
	var scenarioName string
	var tuningPath string
	var dbPath string

	flag.IntVar(&runs, "runs", 5, "number of headless runs")
	flag.IntVar(&ticks, "ticks", 600, "ticks per run")
	flag.Uint64Var(&seedBase, "seed-base", turn.DefaultSeed, "random-walker seed for run 1")
	flag.Uint64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenarioName, "scenario", "default", "scenario name ("+strings.Join(scenarioNames(), ", ")+")")
	flag.StringVar(&tuningPath, "tuning", "", "tuning YAML for the configured world (default: built-in world)")
	flag.StringVar(&dbPath, "db", "", "SQLite file to persist run events into (optional)")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	sc, ok := scenarios[scenarioName]
	if !ok {
		msg := fmt.Sprintf("error: unsupported scenario %q (supported: %s)", scenarioName, strings.Join(scenarioNames(), ", "))
		if s := suggestScenario(scenarioName); s != "" {
			msg += fmt.Sprintf("; did you mean %q?", s)
		}
		fmt.Println(msg)
		return
	}

	cfg := tuning.Default()
	if tuningPath != "" {
		var err error
		if cfg, err = tuning.Load(tuningPath); err != nil {
			log.Fatal(err)
		}
	}

	var store *turnlog.Store
	if dbPath != "" {
		var err error
		if store, err = turnlog.OpenSQLite(dbPath); err != nil {
			log.Fatalf("open turn log: %v", err)
		}
		defer store.Close()
	}

	fmt.Printf("=== Headless Turn Report ===\n")
	fmt.Printf("scenario=%s (%s)\nruns=%d ticks=%d seed_base=%#x seed_step=%d\n\n",
		scenarioName, sc.desc, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + uint64(i)*seedStep
		ts, err := runScenario(sc, cfg, seed, ticks)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			return
		}
		rs := runStats{runIndex: i + 1, seed: seed, report: ts.Report(), events: len(ts.SimLog.Entries())}
		if store != nil {
			meta := turnlog.RunMeta{
				RunID:    fmt.Sprintf("%s-%d", scenarioName, rs.runIndex),
				Scenario: scenarioName,
				Seed:     seed,
				Ticks:    rs.report.Ticks,
				Turns:    rs.report.Turns,
			}
			if err := store.RecordRun(meta, ts.SimLog.Entries()); err != nil {
				fmt.Printf("error: persist run %d: %v\n", rs.runIndex, err)
				return
			}
		}
		all = append(all, rs)
		printRun(rs)
	}
	printAggregate(all)
}

func runScenario(sc scenario, cfg tuning.Tuning, seed uint64, ticks int) (*turn.TestSim, error) {
	opts, err := sc.build(cfg, seed)
	if err != nil {
		return nil, err
	}
	ts := turn.NewTestSim(opts...)
	ts.RunTicks(ticks)
	return ts, nil
}

// configuredWorld builds the tuning world with every walker reseeded from the
// run seed. A nil intent function leaves the player idle.
func configuredWorld(intents func(tick int) turn.Intent) func(tuning.Tuning, uint64) ([]turn.SimOption, error) {
	return func(cfg tuning.Tuning, seed uint64) ([]turn.SimOption, error) {
		cfg.Seed = seed
		cfg.Actors = append([]tuning.ActorTuning(nil), cfg.Actors...)
		for i := range cfg.Actors {
			cfg.Actors[i].Seed = 0
		}
		specs, err := cfg.ActorSpecs()
		if err != nil {
			return nil, err
		}
		opts := []turn.SimOption{turn.WithSeed(seed), turn.WithCost(cfg.ActionCost)}
		for _, s := range specs {
			opts = append(opts, turn.WithActor(s))
		}
		if intents != nil {
			opts = append(opts, turn.WithIntentFunc(intents))
		}
		return opts, nil
	}
}

func threeWalkers(cfg tuning.Tuning, seed uint64) ([]turn.SimOption, error) {
	starts := []turn.Position{{X: 15, Y: 15}, {X: 3, Y: 12}, {X: 12, Y: 3}}
	opts := []turn.SimOption{turn.WithSeed(seed), turn.WithCost(cfg.ActionCost)}
	for i, p := range starts {
		opts = append(opts, turn.WithActor(turn.ActorSpec{
			Label:     fmt.Sprintf("Z%d", i),
			Glyph:     'Z',
			Faction:   turn.FactionUndead,
			Decision:  turn.DecisionRandomWalk,
			Pos:       p,
			MaxEnergy: 30 * int32(i+1),
			Seed:      seed + uint64(i),
		}))
	}
	return opts, nil
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// suggestScenario returns the closest scenario name within edit distance 3,
// or "" when nothing is close.
func suggestScenario(name string) string {
	best, bestDist := "", 4
	for _, candidate := range scenarioNames() {
		if d := levenshtein.ComputeDistance(strings.ToLower(name), candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%#x) ---\n", rs.runIndex, rs.seed)
	fmt.Print(turn.FormatReport(rs.report))
	fmt.Printf("sim_log_events=%d\n\n", rs.events)
}

func printAggregate(all []runStats) {
	totalTurns := 0
	totalIdle := 0
	firstTurns := make([]int, 0, len(all))

	type actorAgg struct {
		moves    int
		passes   int
		waits    int
		distance int
		count    int
	}
	aggs := map[string]*actorAgg{}

	for _, rs := range all {
		totalTurns += int(rs.report.Turns)
		totalIdle += rs.report.IdleTicks
		if rs.report.FirstTurn >= 0 {
			firstTurns = append(firstTurns, rs.report.FirstTurn)
		}
		for _, a := range rs.report.Actors {
			ag, ok := aggs[a.Label]
			if !ok {
				ag = &actorAgg{}
				aggs[a.Label] = ag
			}
			ag.moves += a.Moves
			ag.passes += a.Passes
			ag.waits += a.Waits
			ag.distance += a.Distance
			ag.count++
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("avg_per_run: turns=%.1f idle_ticks=%.1f first_turn=%s stalled_runs=%d\n",
		avg(totalTurns, len(all)), avg(totalIdle, len(all)), avgTickString(firstTurns), len(all)-len(firstTurns))

	labels := make([]string, 0, len(aggs))
	for label := range aggs {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		ag := aggs[label]
		fmt.Printf("  %-8s moves=%.1f passes=%.1f waits=%.1f dist=%.1f\n",
			label, avg(ag.moves, ag.count), avg(ag.passes, ag.count), avg(ag.waits, ag.count), avg(ag.distance, ag.count))
	}
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
