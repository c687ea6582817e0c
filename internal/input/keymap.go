package input

import (
	"math"
	"unicode"

	"git.lost.host/meutraa/lanes/internal/game"
)

// KeyMap resolves runes to game events. Lane keys are matched without case.
type KeyMap struct {
	Lanes []rune
}

func NewKeyMap(keys string) KeyMap {
	lanes := []rune{}
	for _, r := range keys {
		lanes = append(lanes, unicode.ToLower(r))
	}
	return KeyMap{Lanes: lanes}
}

// Lane returns the lane bound to r, or -1.
func (m KeyMap) Lane(r rune) int {
	r = unicode.ToLower(r)
	for i, c := range m.Lanes {
		if r == c {
			return i
		}
	}
	return -1
}

// Rune maps a printable key to an event. Lane keys win over the fixed
// bindings for restart and quit.
func (m KeyMap) Rune(r rune) (game.Event, bool) {
	if lane := m.Lane(r); lane >= 0 {
		return game.Activate(lane), true
	}
	switch r {
	case 'r', 'R':
		return game.Event{Kind: game.Restart}, true
	case 'q', 'Q':
		return game.Event{Kind: game.Quit}, true
	case ' ':
		return game.Event{Kind: game.Start}, true
	}
	return game.Event{}, false
}

// LaneAt resolves a touch at playfield x to a lane, or -1 when x is outside
// the playfield.
func LaneAt(x float64, g game.Geometry) int {
	if x < 0 || x >= g.Width {
		return -1
	}
	lane := int(math.Floor(x / g.LaneWidth))
	if !g.ValidLane(lane) {
		return -1
	}
	return lane
}
