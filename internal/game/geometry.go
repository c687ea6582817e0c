package game

import "git.lost.host/meutraa/lanes/internal/config"

// Geometry is the fixed layout of the playfield, derived once from the config.
type Geometry struct {
	Width, Height float64
	Lanes         int
	LaneWidth     float64
	NoteWidth     float64
	NoteHeight    float64
	LineY         float64 // The judgement line
	NoteSpeed     float64
	SpawnChance   float64
	MinSpacing    float64

	Perfect, Great, Good float64
}

func NewGeometry(c config.Config) Geometry {
	lw := c.Width / float64(c.Lanes)
	return Geometry{
		Width:       c.Width,
		Height:      c.Height,
		Lanes:       c.Lanes,
		LaneWidth:   lw,
		NoteWidth:   lw,
		NoteHeight:  c.NoteHeight,
		LineY:       c.Height - c.LineOffset,
		NoteSpeed:   c.NoteSpeed,
		SpawnChance: c.SpawnChance,
		MinSpacing:  c.MinSpacing,
		Perfect:     c.Perfect,
		Great:       c.Great,
		Good:        c.Good,
	}
}

// LaneX returns the left edge of a lane.
func (g Geometry) LaneX(lane int) float64 {
	return float64(lane) * g.LaneWidth
}

// ValidLane reports whether lane lies in [0, Lanes).
func (g Geometry) ValidLane(lane int) bool {
	return lane >= 0 && lane < g.Lanes
}
