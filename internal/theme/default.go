package theme

import (
	"git.lost.host/meutraa/lanes/internal/game"
)

// Color is a 24 bit colour.
type Color struct {
	R, G, B uint8
}

// Style is how one drawing call should look. Width is the stroke width for
// lines in pixels. Text is always one cell high on a terminal, so emphasis
// is carried by Bold alone.
type Style struct {
	Fg, Bg Color
	Width  float64
	Bold   bool
}

type DefaultTheme struct{}

func (t *DefaultTheme) Background() Style {
	return Style{Fg: white, Bg: white}
}

func (t *DefaultTheme) LaneBorder() Style {
	return Style{Fg: black, Bg: white, Width: 3}
}

func (t *DefaultTheme) JudgementLine() Style {
	return Style{Fg: green, Bg: white, Width: 5}
}

func (t *DefaultTheme) Note(lane int) Style {
	return Style{Fg: red, Bg: red}
}

func (t *DefaultTheme) Text() Style {
	return Style{Fg: black, Bg: white}
}

func (t *DefaultTheme) Judgement(j game.Judgement) Style {
	col, ok := judgementColors[j]
	if !ok {
		col = black
	}
	return Style{Fg: col, Bg: white, Bold: true}
}

func (t *DefaultTheme) Overlay() Style {
	return Style{Fg: black, Bg: white, Bold: true}
}

var (
	white = Color{255, 255, 255}
	black = Color{0, 0, 0}
	red   = Color{255, 0, 0}
	green = Color{0, 255, 0}

	judgementColors = map[game.Judgement]Color{
		game.Perfect: {0, 118, 236}, // blue
		game.Great:   {0, 160, 64},  // green
		game.Good:    {236, 128, 0}, // orange
		game.Miss:    {236, 30, 0},  // red
	}
)
