package score

import (
	"testing"

	"git.lost.host/meutraa/lanes/internal/config"
	"git.lost.host/meutraa/lanes/internal/game"
)

type never struct{}

func (never) Float64() float64 { return 1 }

// geometry moves notes one pixel per tick and allows notes to overlap, so
// tests can place notes anywhere.
func geometry() game.Geometry {
	c := config.Default()
	c.NoteSpeed = 1
	c.MinSpacing = -1000
	return game.NewGeometry(c)
}

// place builds a track with notes at the given tops in one lane, oldest first.
// ys must not increase.
func place(lane int, ys ...int) *game.Track {
	track := game.NewTrack(geometry(), never{})
	for i, y := range ys {
		track.Spawn(lane)
		next := -30
		if i+1 < len(ys) {
			next = ys[i+1]
		}
		track.Advance(y - next)
	}
	return track
}

type hitTest struct {
	ys        []int
	expected  game.Judgement
	removed   int // Index of the note expected to be removed, -1 for none
	remaining int
}

// Centre of a note at top y is y+15, the line is at 500.
var bestTests = map[string]hitTest{
	"empty":              {nil, game.None, -1, 0},
	"centre on line":     {[]int{485}, game.Perfect, 0, 0},
	"perfect edge above": {[]int{480}, game.Perfect, 0, 0},
	"perfect edge below": {[]int{490}, game.Perfect, 0, 0},
	"great":              {[]int{491}, game.Great, 0, 0},
	"great above":        {[]int{479}, game.Great, 0, 0},
	"great edge":         {[]int{495}, game.Great, 0, 0},
	"good":               {[]int{496}, game.Good, 0, 0},
	"good edge":          {[]int{465}, game.Good, 0, 0},
	"too early":          {[]int{464}, game.Miss, -1, 1},
	"too late":           {[]int{506}, game.Miss, -1, 1},
	"far then hit":       {[]int{590, 485}, game.Perfect, 1, 1},
	"closest wins":       {[]int{503, 484}, game.Perfect, 1, 1},
	"tie to the oldest":  {[]int{487, 483}, game.Perfect, 0, 1},
	"all out of reach":   {[]int{590, 300, 100}, game.Miss, -1, 3},
}

var firstTests = map[string]hitTest{
	"empty":            {nil, game.None, -1, 0},
	"centre on line":   {[]int{485}, game.Perfect, 0, 0},
	"great":            {[]int{491}, game.Great, 0, 0},
	"good":             {[]int{496}, game.Good, 0, 0},
	"miss":             {[]int{300}, game.Miss, -1, 1},
	"far then hit":     {[]int{590, 485}, game.Perfect, 1, 1},
	"first in reach":   {[]int{503, 484}, game.Good, 0, 1},
	"all out of reach": {[]int{590, 300, 100}, game.Miss, -1, 3},
}

func runHitTests(t *testing.T, newScorer func(game.Geometry) Scorer, tests map[string]hitTest) {
	for name, test := range tests {
		track := place(1, test.ys...)
		before := append([]game.Note(nil), track.Lane(1)...)
		result := newScorer(geometry()).Judge(1, track)

		if result.Judgement != test.expected {
			t.Errorf("%v: judged %v, expected %v", name, result.Judgement, test.expected)
		}
		if result.Lane != 1 {
			t.Errorf("%v: result for lane %v, expected 1", name, result.Lane)
		}
		if len(track.Lane(1)) != test.remaining {
			t.Errorf("%v: %v notes remain, expected %v", name, len(track.Lane(1)), test.remaining)
		}
		if test.removed >= 0 && result.Note != before[test.removed] {
			t.Errorf("%v: removed %v, expected %v", name, result.Note, before[test.removed])
		}
	}
}

func TestDefaultJudge(t *testing.T) {
	runHitTests(t, func(g game.Geometry) Scorer { return New(config.JudgeBest, g) }, bestTests)
}

func TestFirstJudge(t *testing.T) {
	runHitTests(t, func(g game.Geometry) Scorer { return New(config.JudgeFirst, g) }, firstTests)
}

func TestJudgeOtherLanes(t *testing.T) {
	track := place(0, 485)
	s := New(config.JudgeBest, geometry())
	for _, lane := range []int{1, 2, 3, -1, 4} {
		if r := s.Judge(lane, track); r.Judgement != game.None {
			t.Errorf("lane %v judged %v", lane, r.Judgement)
		}
	}
	if len(track.Lane(0)) != 1 {
		t.Error("note removed by another lane")
	}
}

func BenchmarkJudge(b *testing.B) {
	s := New(config.JudgeBest, geometry())
	track := place(2, 590, 400, 300, 200, 100)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		s.Judge(2, track)
	}
}
