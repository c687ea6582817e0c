package input

import (
	"testing"

	"git.lost.host/meutraa/lanes/internal/config"
	"git.lost.host/meutraa/lanes/internal/game"
	"github.com/eiannone/keyboard"
)

var runeTests = map[rune]game.Event{
	'd': game.Activate(0),
	'F': game.Activate(1),
	'j': game.Activate(2),
	'k': game.Activate(3),
	'r': {Kind: game.Restart},
	'R': {Kind: game.Restart},
	'q': {Kind: game.Quit},
	' ': {Kind: game.Start},
}

func TestKeyMapRune(t *testing.T) {
	m := NewKeyMap("dfjk")
	for r, expected := range runeTests {
		ev, ok := m.Rune(r)
		if !ok || ev != expected {
			t.Errorf("%q mapped to %v %v, expected %v", r, ev, ok, expected)
		}
	}
	if _, ok := m.Rune('x'); ok {
		t.Error("unbound key produced an event")
	}
}

func TestKeyMapLaneWins(t *testing.T) {
	m := NewKeyMap("qwer")
	if ev, _ := m.Rune('r'); ev != game.Activate(3) {
		t.Error("lane key r mapped to", ev)
	}
	if ev, _ := m.Rune('q'); ev != game.Activate(0) {
		t.Error("lane key q mapped to", ev)
	}
}

func TestLaneAt(t *testing.T) {
	g := game.NewGeometry(config.Default())
	tests := map[float64]int{-1: -1, 0: 0, 199.9: 0, 200: 1, 450: 2, 799: 3, 800: -1, 1200: -1}
	for x, expected := range tests {
		if lane := LaneAt(x, g); lane != expected {
			t.Errorf("x %v resolved to lane %v, expected %v", x, lane, expected)
		}
	}
}

func TestKeyboardEvent(t *testing.T) {
	s := KeyboardSource{Keys: NewKeyMap("dfjk")}
	tests := []struct {
		r        rune
		key      keyboard.Key
		expected game.Event
		ok       bool
	}{
		{0, keyboard.KeyEsc, game.Event{Kind: game.PauseToggle}, true},
		{0, keyboard.KeyEnter, game.Event{Kind: game.Start}, true},
		{0, keyboard.KeySpace, game.Event{Kind: game.Start}, true},
		{0, keyboard.KeyCtrlC, game.Event{Kind: game.Quit}, true},
		{'j', 0, game.Activate(2), true},
		{'r', 0, game.Event{Kind: game.Restart}, true},
		{0, keyboard.KeyArrowUp, game.Event{}, false},
	}
	for _, test := range tests {
		ev, ok := s.Event(test.r, test.key)
		if ok != test.ok || ev != test.expected {
			t.Errorf("%q %v mapped to %v %v", test.r, test.key, ev, ok)
		}
	}
}
