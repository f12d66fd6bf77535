package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/thaumafunge/internal/turn"
)

const (
	logPanelWidth = 240
	logMaxEntries = 60
	logLineHeight = 14
)

// ActionEntry is a single line in the action log.
type ActionEntry struct {
	Tick    int
	Turn    uint64
	Label   string // "" for turn boundaries
	Faction turn.Faction
	Message string
}

// ActionLog is a ring buffer of recent scheduling events rendered on-screen.
// Passes are not recorded; an idle player would flood it at 60 lines a second.
type ActionLog struct {
	entries []ActionEntry
	head    int
	count   int
}

// NewActionLog creates an action log with a fixed capacity.
func NewActionLog() *ActionLog {
	return &ActionLog{
		entries: make([]ActionEntry, logMaxEntries),
	}
}

// Add appends an entry to the log.
func (al *ActionLog) Add(e ActionEntry) {
	al.entries[al.head] = e
	al.head = (al.head + 1) % logMaxEntries
	if al.count < logMaxEntries {
		al.count++
	}
}

// Record adds the notable parts of a tick: the turn boundary and any action
// that spent energy.
func (al *ActionLog) Record(res turn.TickResult) {
	if res.NewTurn {
		al.Add(ActionEntry{Tick: res.Tick, Turn: res.Turn, Message: fmt.Sprintf("-- turn %d --", res.Turn)})
	}
	if res.Active == nil {
		return
	}
	a := res.Active
	var msg string
	switch res.Action.Kind {
	case turn.ActionMove:
		how := res.Action.Dir.String()
		if res.Action.Intent.Any() {
			how = res.Action.Intent.String()
		}
		msg = fmt.Sprintf("%s to (%d,%d) -%d", how, a.Pos.X, a.Pos.Y, res.Action.Spent)
	case turn.ActionWait:
		msg = fmt.Sprintf("waits -%d", res.Action.Spent)
	default:
		return
	}
	al.Add(ActionEntry{Tick: res.Tick, Turn: res.Turn, Label: a.Label, Faction: a.Faction, Message: msg})
}

// Recent returns entries in chronological order (oldest first).
func (al *ActionLog) Recent() []ActionEntry {
	result := make([]ActionEntry, al.count)
	for i := 0; i < al.count; i++ {
		idx := (al.head - al.count + i + logMaxEntries) % logMaxEntries
		result[i] = al.entries[idx]
	}
	return result
}

// Draw renders the log panel on the right side of the screen.
func (al *ActionLog) Draw(screen *ebiten.Image, face text.Face, panelX int, panelH int) {
	// Panel background.
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 10, G: 12, B: 10, A: 248}, false)
	// Left separator line.
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)

	// Title bar.
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 18, color.RGBA{R: 20, G: 30, B: 20, A: 255}, false)
	drawText(screen, face, "ACTION LOG", float64(panelX+8), 2, hudTextColor)

	entries := al.Recent()

	// Newest at the bottom.
	maxVisible := (panelH - 24) / logLineHeight
	startIdx := 0
	if len(entries) > maxVisible {
		startIdx = len(entries) - maxVisible
	}
	visible := entries[startIdx:]
	recent := 3 // how many latest entries to highlight

	y := 22
	for i, e := range visible {
		if i >= len(visible)-recent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 30, G: 40, B: 30, A: 160}, false)
		}
		var line string
		c := hudTextColor
		if e.Label == "" {
			line = fmt.Sprintf("%4d %s", e.Tick, e.Message)
		} else {
			line = fmt.Sprintf("%4d %s %s", e.Tick, e.Label, e.Message)
			c = factionColor(e.Faction)
		}
		drawText(screen, face, line, float64(panelX+6), float64(y), c)
		y += logLineHeight
	}
}

// drawText draws s with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, face text.Face, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
