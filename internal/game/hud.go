package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudX        = 8
	hudY        = 6
	hudLine     = 15
	energyBarW  = 90
	energyBarH  = 6
	energyBarDX = 200
)

// drawHUD shows the turn counter, the active actor and every actor's budget.
func (g *Game) drawHUD(screen *ebiten.Image) {
	y := float64(hudY)
	header := fmt.Sprintf("TURN %d  tick %d", g.scheduler.Turn(), g.scheduler.Tick())
	if g.paused {
		header += "  [PAUSED]"
	}
	drawText(screen, g.face, header, hudX, y, hudTextColor)
	y += hudLine

	activeLabel := "none"
	if a := g.registry.Active(); a != nil {
		activeLabel = a.Label
	}
	drawText(screen, g.face, "active: "+activeLabel, hudX, y, hudTextColor)
	y += hudLine

	for _, a := range g.registry.Actors() {
		line := fmt.Sprintf("%c %-8s %3d/%-3d", a.Glyph, a.Label, a.Energy.Current, a.Energy.Max)
		if a.Mana != nil {
			line += fmt.Sprintf(" mp %d", a.Mana.Current)
		}
		drawText(screen, g.face, line, hudX, y, factionColor(a.Faction))

		frac := float32(0)
		if a.Energy.Max > 0 {
			frac = float32(a.Energy.Current) / float32(a.Energy.Max)
		}
		bx := float32(hudX + energyBarDX)
		by := float32(y) + 4
		vector.FillRect(screen, bx, by, energyBarW, energyBarH, color.RGBA{R: 40, G: 40, B: 40, A: 220}, false)
		vector.FillRect(screen, bx, by, energyBarW*frac, energyBarH, color.RGBA{R: 90, G: 180, B: 90, A: 255}, false)
		y += hudLine
	}

	drawText(screen, g.face, "WASD/arrows move  P pause  C copy report  click inspect", hudX, y+4, color.RGBA{R: 150, G: 150, B: 140, A: 255})
	if g.status != "" {
		drawText(screen, g.face, g.status, hudX, y+4+hudLine, color.RGBA{R: 200, G: 180, B: 90, A: 255})
	}
}
