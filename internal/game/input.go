package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/thaumafunge/internal/turn"
)

// pollIntent snapshots the held movement keys. WASD and the arrow keys are
// interchangeable.
func pollIntent() turn.Intent {
	return intentFromKeys(ebiten.IsKeyPressed)
}

func intentFromKeys(pressed func(ebiten.Key) bool) turn.Intent {
	var in turn.Intent
	if pressed(ebiten.KeyW) || pressed(ebiten.KeyArrowUp) {
		in |= turn.IntentUp
	}
	if pressed(ebiten.KeyS) || pressed(ebiten.KeyArrowDown) {
		in |= turn.IntentDown
	}
	if pressed(ebiten.KeyA) || pressed(ebiten.KeyArrowLeft) {
		in |= turn.IntentLeft
	}
	if pressed(ebiten.KeyD) || pressed(ebiten.KeyArrowRight) {
		in |= turn.IntentRight
	}
	return in
}
