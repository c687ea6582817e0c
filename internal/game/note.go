package game

// Note is a single falling note. Y is the top edge of the note in playfield
// pixels, growing downwards.
type Note struct {
	Lane int
	Y    float64
}

// Center returns the vertical centre of a note of the given height.
func (n Note) Center(height float64) float64 {
	return n.Y + height/2
}
