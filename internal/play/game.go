package play

import (
	"log"

	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/score"
)

type Phase uint8

const (
	NotStarted Phase = iota
	Running
	Paused
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "NotStarted"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	}
	return "Unknown"
}

// State is everything the renderer needs besides the notes.
type State struct {
	Score   int
	Last    game.Judgement
	Started bool
	Paused  bool
	Counts  [len(game.Judgements)]int // Indexed like game.Judgements
	Dropped int                       // Notes that fell past the bottom uncaught
	Ticks   uint64
}

func (s State) Phase() Phase {
	switch {
	case !s.Started:
		return NotStarted
	case s.Paused:
		return Paused
	}
	return Running
}

// Count returns how often a judgement was given since the last restart.
func (s State) Count(j game.Judgement) int {
	for i, c := range game.Judgements {
		if c == j {
			return s.Counts[i]
		}
	}
	return 0
}

// Game owns the track and the state. It is not safe for concurrent use, all
// events are queued and applied on the next tick.
type Game struct {
	Track  *game.Track
	Scorer score.Scorer

	// OnJudge is called after every lane activation that produced a result
	OnJudge func(score.Result)

	state  State
	events []game.Event
}

func New(track *game.Track, scorer score.Scorer) *Game {
	return &Game{
		Track:  track,
		Scorer: scorer,
	}
}

func (g *Game) State() State {
	return g.state
}

// Queue stores an event to be applied at the start of the next tick.
func (g *Game) Queue(ev game.Event) {
	g.events = append(g.events, ev)
}

// Tick applies the queued events in arrival order, then spawns and moves
// notes if the game is running.
func (g *Game) Tick() {
	for _, ev := range g.events {
		g.Apply(ev)
	}
	g.events = g.events[:0]

	g.state.Ticks++
	if g.state.Phase() != Running {
		return
	}

	geometry := g.Track.Geometry()
	for lane := 0; lane < geometry.Lanes; lane++ {
		g.Track.MaybeSpawn(lane)
	}
	g.state.Dropped += g.Track.Advance(1)
}

// Apply handles a single event immediately. Events that are not valid in the
// current phase are ignored.
func (g *Game) Apply(ev game.Event) {
	phase := g.state.Phase()
	switch ev.Kind {
	case game.Start:
		if phase == NotStarted {
			g.state.Started = true
			log.Println("game started")
		}
	case game.PauseToggle:
		if phase != NotStarted {
			g.state.Paused = !g.state.Paused
		}
	case game.Restart:
		if phase == Paused {
			g.restart()
		}
	case game.LaneActivated:
		if phase == Running {
			g.activate(ev.Lane)
		}
	}
}

func (g *Game) restart() {
	g.Track.Clear()
	g.state = State{Started: true, Ticks: g.state.Ticks}
	log.Println("game restarted")
}

func (g *Game) activate(lane int) {
	if !g.Track.Geometry().ValidLane(lane) {
		return
	}
	result := g.Scorer.Judge(lane, g.Track)
	if result.Judgement == game.None {
		return
	}
	if result.Hit() {
		g.state.Score++
	}
	g.state.Last = result.Judgement
	for i, j := range game.Judgements {
		if j == result.Judgement {
			g.state.Counts[i]++
		}
	}
	if nil != g.OnJudge {
		g.OnJudge(result)
	}
}
