package render

import "git.lost.host/meutraa/lanes/internal/theme"

// Point is a position on the playfield in pixels.
type Point struct {
	X, Y float64
}

type Size struct {
	W, H float64
}

// Surface is what the game is drawn onto. Coordinates are playfield pixels,
// implementations scale them to whatever they draw on.
type Surface interface {
	Clear()
	DrawLine(from, to Point, st theme.Style)
	DrawRect(pos Point, size Size, st theme.Style)
	DrawText(s string, pos Point, st theme.Style)
	MeasureText(s string) float64
	Flush() error
}
