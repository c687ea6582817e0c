package render

import (
	"fmt"

	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/play"
	"git.lost.host/meutraa/lanes/internal/theme"
)

const (
	TextPaused  = "Paused"
	TextRestart = "Press R to Restart"
	TextStart   = "Press Enter to Start"
)

// Renderer draws a whole frame of the game onto a surface.
type Renderer struct {
	Surface  Surface
	Theme    theme.Theme
	Geometry game.Geometry
}

func (r *Renderer) Draw(state play.State, track *game.Track) error {
	s, th, g := r.Surface, r.Theme, r.Geometry

	s.Clear()
	s.DrawRect(Point{0, 0}, Size{g.Width, g.Height}, th.Background())

	// Lanes
	for lane := 0; lane < g.Lanes; lane++ {
		x := g.LaneX(lane)
		s.DrawLine(Point{x, 0}, Point{x, g.Height}, th.LaneBorder())
	}

	s.DrawLine(Point{0, g.LineY}, Point{g.Width, g.LineY}, th.JudgementLine())

	// Notes
	for lane := 0; lane < g.Lanes; lane++ {
		for _, note := range track.Lane(lane) {
			s.DrawRect(Point{g.LaneX(lane), note.Y}, Size{g.NoteWidth, g.NoteHeight}, th.Note(lane))
		}
	}

	s.DrawText(fmt.Sprintf("Score: %v", state.Score), Point{20, 40}, th.Text())
	if state.Last != game.None {
		s.DrawText(state.Last.String(), Point{g.Width/2 - 50, g.LineY - 50}, th.Judgement(state.Last))
	}
	r.drawCounts(state)

	switch state.Phase() {
	case play.NotStarted:
		r.centred(TextStart, g.Height/2, th.Overlay())
	case play.Paused:
		r.centred(TextPaused, g.Height/2-40, th.Overlay())
		r.centred(TextRestart, g.Height/2+40, th.Overlay())
	}

	return s.Flush()
}

// drawCounts lists the judgement counters right aligned in the top corner.
func (r *Renderer) drawCounts(state play.State) {
	y := 40.0
	for i, j := range game.Judgements {
		r.right(fmt.Sprintf("%v: %4v", j, state.Counts[i]), y, r.Theme.Judgement(j))
		y += 28
	}
	r.right(fmt.Sprintf("Dropped: %4v", state.Dropped), y, r.Theme.Text())
}

func (r *Renderer) right(text string, y float64, st theme.Style) {
	x := r.Geometry.Width - 20 - r.Surface.MeasureText(text)
	r.Surface.DrawText(text, Point{x, y}, st)
}

func (r *Renderer) centred(text string, y float64, st theme.Style) {
	x := r.Geometry.Width/2 - r.Surface.MeasureText(text)/2
	r.Surface.DrawText(text, Point{x, y}, st)
}
