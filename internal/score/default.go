package score

import (
	"math"

	"git.lost.host/meutraa/lanes/internal/game"
)

// DefaultScorer picks the note closest to the judgement line within the
// widest window. Older notes win ties.
type DefaultScorer struct {
	Geometry game.Geometry
}

// Returns the signed distance of the note centre from the line
func (s *DefaultScorer) Distance(n game.Note) float64 {
	return n.Center(s.Geometry.NoteHeight) - s.Geometry.LineY
}

func (s *DefaultScorer) Classify(distance float64) game.Judgement {
	d := math.Abs(distance)
	switch {
	case d <= s.Geometry.Perfect:
		return game.Perfect
	case d <= s.Geometry.Great:
		return game.Great
	case d <= s.Geometry.Good:
		return game.Good
	}
	return game.Miss
}

func (s *DefaultScorer) Judge(lane int, track *game.Track) Result {
	notes := track.Lane(lane)
	if len(notes) == 0 {
		return Result{Lane: lane}
	}

	closest := -1
	absDistance := math.Inf(1)
	for i, note := range notes {
		d := math.Abs(s.Distance(note))
		if d <= s.Geometry.Good && d < absDistance {
			absDistance = d
			closest = i
		}
	}
	if closest < 0 {
		return Result{Lane: lane, Judgement: game.Miss}
	}

	note, _ := track.Remove(lane, closest)
	distance := s.Distance(note)
	return Result{Lane: lane, Judgement: s.Classify(distance), Note: note, Distance: distance}
}

// FirstScorer takes the first note in spawn order that lies within any
// window. Every note outside the windows that is passed on the way marks the
// result as a Miss, so a lane with no note in reach ends on Miss.
type FirstScorer struct {
	DefaultScorer
}

func (s *FirstScorer) Judge(lane int, track *game.Track) Result {
	result := Result{Lane: lane}
	for i, note := range track.Lane(lane) {
		distance := s.Distance(note)
		j := s.Classify(distance)
		if j == game.Miss {
			result.Judgement = game.Miss
			continue
		}
		track.Remove(lane, i)
		return Result{Lane: lane, Judgement: j, Note: note, Distance: distance}
	}
	return result
}
