package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/thaumafunge/internal/turn"
)

// Inspector panel, rendered into an offscreen buffer at 1x then blitted at inspScale.
const (
	inspScale    = 2
	inspBufW     = 150
	inspBufH     = 150
	inspPad      = 4
	inspLineH    = 13
	inspRawLines = 7
)

// Inspector holds the selected actor and view toggle state.
type Inspector struct {
	selected *turn.Actor
	rawView  bool // false = curated, true = recent sim-log lines
}

// cellAt is the inverse of screenPos: the grid cell under a screen pixel.
func cellAt(mx, my, screenH int) (turn.Position, bool) {
	if mx < 0 || my < 0 || my > screenH {
		return turn.Position{}, false
	}
	return turn.Position{X: mx / tileSize, Y: (screenH - my) / tileSize}, true
}

// handleInspectorClick selects the first actor standing on the clicked cell.
// Returns true if an actor was hit; clicking empty space deselects.
func (g *Game) handleInspectorClick(mx, my int) bool {
	g.inspector.selected = nil
	cell, ok := cellAt(mx, my, g.mapHeight())
	if !ok {
		return false
	}
	for _, a := range g.registry.Actors() {
		if a.Pos == cell {
			g.inspector.selected = a
			return true
		}
	}
	return false
}

// inspectorLines renders the panel body for the selected actor.
func (g *Game) inspectorLines() []string {
	a := g.inspector.selected
	if a == nil {
		return nil
	}
	if g.inspector.rawView {
		entries := g.simLog.FilterActor(a.Label)
		if len(entries) > inspRawLines {
			entries = entries[len(entries)-inspRawLines:]
		}
		if len(entries) == 0 {
			return []string{"(no events)"}
		}
		lines := make([]string, 0, len(entries))
		for _, e := range entries {
			lines = append(lines, fmt.Sprintf("%d %s %s", e.Tick, e.Key, e.Value))
		}
		return lines
	}

	lines := []string{
		fmt.Sprintf("decision: %s", a.Decision),
		fmt.Sprintf("pos: (%d,%d)", a.Pos.X, a.Pos.Y),
		fmt.Sprintf("energy: %d/%d", a.Energy.Current, a.Energy.Max),
		"       " + energyGauge(a.Energy, 12),
	}
	if a.Mana != nil {
		lines = append(lines, fmt.Sprintf("mana: %d/%d", a.Mana.Current, a.Mana.Max))
	}
	if a.Stream != nil {
		lines = append(lines, fmt.Sprintf("seed: %#x", a.Stream.Seed()))
	}
	if a.IsActive() {
		lines = append(lines, "ACTIVE this tick")
	}
	return lines
}

func energyGauge(e turn.Energy, width int) string {
	filled := 0
	if e.Max > 0 {
		filled = int(e.Current) * width / int(e.Max)
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

// drawInspector renders the inspector panel above the action log.
func (g *Game) drawInspector(screen *ebiten.Image) {
	a := g.inspector.selected
	if a == nil {
		return
	}
	if g.inspBuf == nil {
		g.inspBuf = ebiten.NewImage(inspBufW, inspBufH)
	}
	buf := g.inspBuf
	buf.Clear()

	bw := float32(inspBufW)
	bh := float32(inspBufH)
	panelBorder := color.RGBA{R: 55, G: 80, B: 55, A: 255}
	vector.FillRect(buf, 0, 0, bw, bh, color.RGBA{R: 14, G: 16, B: 14, A: 230}, false)
	vector.StrokeRect(buf, 0, 0, bw, bh, 1.0, panelBorder, false)

	lx, ly := inspPad, inspPad
	ebitenutil.DebugPrintAt(buf, fmt.Sprintf("[ %c %s ]", a.Glyph, a.Label), lx, ly)
	ly += inspLineH
	view := "CURATED"
	if g.inspector.rawView {
		view = "RAW"
	}
	ebitenutil.DebugPrintAt(buf, fmt.Sprintf("view: %s [I]", view), lx, ly)
	ly += inspLineH + 2
	vector.StrokeLine(buf, float32(lx), float32(ly), bw-inspPad, float32(ly), 1.0, panelBorder, false)
	ly += 3

	for _, line := range g.inspectorLines() {
		ebitenutil.DebugPrintAt(buf, line, lx, ly)
		ly += inspLineH
	}

	px := g.cfg.Window.Width - logPanelWidth - inspBufW*inspScale - 8
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(inspScale, inspScale)
	opts.GeoM.Translate(float64(px), 8)
	screen.DrawImage(buf, opts)
}
