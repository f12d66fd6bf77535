package turn

import "strings"

// Intent is the set of directional keys held during one tick.
type Intent uint8

const (
	IntentUp Intent = 1 << iota // +y
	IntentDown                  // -y
	IntentLeft                  // -x
	IntentRight                 // +x

	IntentNone Intent = 0
)

// Has reports whether every direction in d is held.
func (in Intent) Has(d Intent) bool {
	return in&d == d && d != 0
}

// Any reports whether at least one direction is held.
func (in Intent) Any() bool {
	return in&(IntentUp|IntentDown|IntentLeft|IntentRight) != 0
}

// Delta is the vector sum of the held directions. Opposite keys cancel.
func (in Intent) Delta() Position {
	var d Position
	if in.Has(IntentUp) {
		d.Y++
	}
	if in.Has(IntentDown) {
		d.Y--
	}
	if in.Has(IntentLeft) {
		d.X--
	}
	if in.Has(IntentRight) {
		d.X++
	}
	return d
}

func (in Intent) String() string {
	if !in.Any() {
		return "none"
	}
	var parts []string
	if in.Has(IntentUp) {
		parts = append(parts, "up")
	}
	if in.Has(IntentDown) {
		parts = append(parts, "down")
	}
	if in.Has(IntentLeft) {
		parts = append(parts, "left")
	}
	if in.Has(IntentRight) {
		parts = append(parts, "right")
	}
	return strings.Join(parts, "+")
}
