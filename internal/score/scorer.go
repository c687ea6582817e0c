package score

import (
	"git.lost.host/meutraa/lanes/internal/config"
	"git.lost.host/meutraa/lanes/internal/game"
)

type Scorer interface {
	// Judge finds the note in lane matching a hit and removes it from the track
	Judge(lane int, track *game.Track) Result

	// Classify maps a distance from the judgement line to a window
	Classify(distance float64) game.Judgement
}

// Result of a single lane activation. Judgement is None when the lane was empty.
type Result struct {
	Lane      int
	Judgement game.Judgement
	Note      game.Note
	Distance  float64 // Signed distance of the note centre from the line, positive below
}

func (r Result) Hit() bool {
	return r.Judgement.Hit()
}

// New returns the scorer for the named policy. Unknown names get the
// best match policy.
func New(policy string, g game.Geometry) Scorer {
	if policy == config.JudgeFirst {
		return &FirstScorer{DefaultScorer{Geometry: g}}
	}
	return &DefaultScorer{Geometry: g}
}
