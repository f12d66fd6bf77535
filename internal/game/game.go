package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/thaumafunge/internal/tuning"
	"github.com/Garsondee/thaumafunge/internal/turn"
)

// tileSize is the pixel edge of one grid cell.
const tileSize = 16

var (
	clearColor   = color.RGBA{R: 51, G: 51, B: 51, A: 255}
	playerColor  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	undeadColor  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	activeColor  = color.RGBA{R: 120, G: 220, B: 120, A: 220}
	selectColor  = color.RGBA{R: 240, G: 200, B: 60, A: 255}
	floorColor   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	wallColor    = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	hudTextColor = color.RGBA{R: 220, G: 220, B: 210, A: 255}
)

// sprite is the cached screen-space centre of an actor.
type sprite struct {
	x, y float64
}

type Game struct {
	cfg       tuning.Tuning
	registry  *turn.Registry
	scheduler *turn.Scheduler
	simLog    *turn.SimLog
	floor     *TileMap
	actionLog *ActionLog
	sprites   map[int]sprite
	face      text.Face

	// Actor inspector (click-to-select panel).
	inspector     Inspector
	inspBuf       *ebiten.Image
	prevMouseLeft bool

	paused   bool
	status   string // last debug-report message shown in the HUD
	prevKeys map[ebiten.Key]bool
}

// New performs world setup once: actors from t are created in file order and
// the scheduler starts with every actor at full energy.
func New(t tuning.Tuning) (*Game, error) {
	specs, err := t.ActorSpecs()
	if err != nil {
		return nil, fmt.Errorf("world setup: %w", err)
	}
	reg := turn.NewRegistry()
	for _, s := range specs {
		reg.Add(s)
	}
	simLog := turn.NewSimLog(false)
	g := &Game{
		cfg:       t,
		registry:  reg,
		scheduler: turn.NewScheduler(reg, turn.WithActionCost(t.ActionCost), turn.WithSimLog(simLog)),
		simLog:    simLog,
		floor:     NewTileMap(t.Floor.Width, t.Floor.Height),
		actionLog: NewActionLog(),
		sprites:   make(map[int]sprite, reg.Len()),
		face:      text.NewGoXFace(basicfont.Face7x13),
		prevKeys:  make(map[ebiten.Key]bool),
	}
	for _, a := range reg.Actors() {
		g.sprites[a.ID] = g.spriteFor(a.Pos)
	}
	return g, nil
}

// Update advances the scheduler by exactly one tick per frame.
func (g *Game) Update() error {
	g.handleInput()
	if g.paused {
		return nil
	}
	res := g.scheduler.Advance(pollIntent())
	g.actionLog.Record(res)
	g.syncSprites()
	return nil
}

// syncSprites reprojects only the actors that moved since the last frame.
func (g *Game) syncSprites() {
	g.registry.DrainMoved(func(a *turn.Actor) {
		g.sprites[a.ID] = g.spriteFor(a.Pos)
	})
}

func (g *Game) spriteFor(p turn.Position) sprite {
	x, y := screenPos(p, g.mapHeight())
	return sprite{x: x, y: y}
}

// mapHeight is the pixel height of the world view.
func (g *Game) mapHeight() int {
	return g.cfg.Window.Height
}

// screenPos projects a tile position to the pixel centre of its cell, with
// the world origin at the bottom-left of a view screenH pixels tall.
func screenPos(p turn.Position, screenH int) (float64, float64) {
	x := float64(p.X*tileSize + tileSize/2)
	y := float64(p.Y*tileSize + tileSize/2)
	return x, float64(screenH) - y
}

// justPressed reports an edge-triggered keypress and records the key state.
func (g *Game) justPressed(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	was := g.prevKeys[k]
	g.prevKeys[k] = down
	return down && !was
}

// handleInput processes the non-movement hotkeys and inspector clicks.
func (g *Game) handleInput() {
	if g.justPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.justPressed(ebiten.KeyC) {
		g.status = g.copyDebugReport()
	}
	if g.justPressed(ebiten.KeyI) && g.inspector.selected != nil {
		g.inspector.rawView = !g.inspector.rawView
	}

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if left && !g.prevMouseLeft {
		mx, my := ebiten.CursorPosition()
		g.handleInspectorClick(mx, my)
	}
	g.prevMouseLeft = left
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	g.drawFloor(screen)
	g.drawActors(screen)
	g.drawHUD(screen)
	g.drawInspector(screen)
	g.actionLog.Draw(screen, g.face, g.cfg.Window.Width-logPanelWidth, g.cfg.Window.Height)
}

func (g *Game) drawFloor(screen *ebiten.Image) {
	h := g.mapHeight()
	for y := 0; y < g.floor.Height; y++ {
		for x := 0; x < g.floor.Width; x++ {
			cx, cy := screenPos(turn.Position{X: x, Y: y}, h)
			x0 := float32(cx) - tileSize/2
			y0 := float32(cy) - tileSize/2
			vector.FillRect(screen, x0, y0, tileSize, tileSize, floorColor, false)
			if g.floor.At(x, y) == TileWall {
				g.drawGlyph(screen, '#', cx, cy, wallColor)
			}
		}
	}
}

func (g *Game) drawActors(screen *ebiten.Image) {
	for _, a := range g.registry.Actors() {
		sp := g.sprites[a.ID]
		if a == g.inspector.selected {
			vector.StrokeCircle(screen, float32(sp.x), float32(sp.y), tileSize*0.75, 1.0, selectColor, false)
		}
		if a.IsActive() {
			vector.StrokeRect(screen, float32(sp.x)-tileSize/2, float32(sp.y)-tileSize/2,
				tileSize, tileSize, 1.0, activeColor, false)
		}
		g.drawGlyph(screen, a.Glyph, sp.x, sp.y, factionColor(a.Faction))
	}
}

// drawGlyph centres a single character on (cx, cy).
func (g *Game) drawGlyph(screen *ebiten.Image, r rune, cx, cy float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, string(r), g.face, op)
}

func factionColor(f turn.Faction) color.RGBA {
	if turn.DispositionBetween(turn.FactionPlayer, f) == turn.WorkWith {
		return playerColor
	}
	return undeadColor
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Scheduler exposes the scheduler for read-only observers.
func (g *Game) Scheduler() *turn.Scheduler {
	return g.scheduler
}
