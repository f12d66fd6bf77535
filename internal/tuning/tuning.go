package tuning

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/Garsondee/thaumafunge/internal/turn"
)

type Tuning struct {
	Window     Window        `yaml:"window"`
	ActionCost int32         `yaml:"action_cost"`
	Seed       uint64        `yaml:"seed"`
	Floor      Floor         `yaml:"floor"`
	Actors     []ActorTuning `yaml:"actors"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Floor struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ActorTuning describes one actor created at world setup. max_energy is not
// validated: a non-positive value leaves scheduling undefined.
type ActorTuning struct {
	Label     string `yaml:"label"`
	Glyph     string `yaml:"glyph"`
	Decision  string `yaml:"decision"` // player | random_walker
	Faction   string `yaml:"faction"`  // player | undead
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	MaxEnergy int32  `yaml:"max_energy"`
	Mana      uint32 `yaml:"mana"`
	Seed      uint64 `yaml:"seed"`
}

// Default returns the stock world: the player in the corner of a 10x10 room
// and one wandering zombie outside it.
func Default() Tuning {
	return Tuning{
		Window:     Window{Width: 800, Height: 600, Title: "Thaumafunge"},
		ActionCost: turn.DefaultActionCost,
		Seed:       turn.DefaultSeed,
		Floor:      Floor{Width: 10, Height: 10},
		Actors: []ActorTuning{
			{Label: "player", Glyph: "@", Decision: "player", Faction: "player", X: 1, Y: 1, MaxEnergy: 60, Mana: 100},
			{Label: "zombie", Glyph: "Z", Decision: "random_walker", Faction: "undead", X: 15, Y: 15, MaxEnergy: 30},
		},
	}
}

// Load reads path over Default. Keys missing from the file keep their
// default; an actors list in the file replaces the default actors.
func Load(path string) (Tuning, error) {
	t := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if _, err := t.ActorSpecs(); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	return t, nil
}

// ActorSpecs converts the actor list into registry creation records, in file order.
func (t Tuning) ActorSpecs() ([]turn.ActorSpec, error) {
	specs := make([]turn.ActorSpec, 0, len(t.Actors))
	for i, a := range t.Actors {
		decision, err := ParseDecision(a.Decision)
		if err != nil {
			return nil, fmt.Errorf("actors[%d]: %w", i, err)
		}
		faction, err := ParseFaction(a.Faction)
		if err != nil {
			return nil, fmt.Errorf("actors[%d]: %w", i, err)
		}
		seed := a.Seed
		if seed == 0 && decision == turn.DecisionRandomWalk {
			seed = t.Seed
		}
		glyph := '?'
		if a.Glyph != "" {
			glyph, _ = utf8.DecodeRuneInString(a.Glyph)
		}
		specs = append(specs, turn.ActorSpec{
			Label:     a.Label,
			Glyph:     glyph,
			Faction:   faction,
			Decision:  decision,
			Pos:       turn.Position{X: a.X, Y: a.Y},
			MaxEnergy: a.MaxEnergy,
			Mana:      a.Mana,
			Seed:      seed,
		})
	}
	return specs, nil
}

// ParseDecision maps a config name to a decision kind.
func ParseDecision(name string) (turn.DecisionKind, error) {
	switch name {
	case "player":
		return turn.DecisionPlayer, nil
	case "random_walker", "random":
		return turn.DecisionRandomWalk, nil
	default:
		return 0, fmt.Errorf("unknown decision %q", name)
	}
}

// ParseFaction maps a config name to a faction. Empty means undead.
func ParseFaction(name string) (turn.Faction, error) {
	switch name {
	case "player":
		return turn.FactionPlayer, nil
	case "undead", "":
		return turn.FactionUndead, nil
	default:
		return 0, fmt.Errorf("unknown faction %q", name)
	}
}
