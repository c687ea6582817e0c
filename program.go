package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"git.lost.host/meutraa/lanes/internal/audio"
	"git.lost.host/meutraa/lanes/internal/config"
	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/input"
	"git.lost.host/meutraa/lanes/internal/play"
	"git.lost.host/meutraa/lanes/internal/render"
	"git.lost.host/meutraa/lanes/internal/score"
	"git.lost.host/meutraa/lanes/internal/theme"
)

// Program ties the game to a surface and an input source and runs the loop.
type Program struct {
	Config   config.Config
	Game     *play.Game
	Renderer *render.Renderer
	Source   input.Source
	Clicker  *audio.Clicker

	events chan game.Event
	err    error
}

func NewProgram(c config.Config, surface render.Surface, source input.Source) *Program {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Println("spawn seed", seed)

	geometry := game.NewGeometry(c)
	track := game.NewTrack(geometry, rand.New(rand.NewSource(seed)))
	p := &Program{
		Config: c,
		Game:   play.New(track, score.New(c.Judge, geometry)),
		Renderer: &render.Renderer{
			Surface:  surface,
			Theme:    &theme.DefaultTheme{},
			Geometry: geometry,
		},
		Source: source,
		events: make(chan game.Event, 128),
	}
	p.Game.OnJudge = p.judged
	return p
}

func (p *Program) judged(r score.Result) {
	log.Printf("lane %v %v (%.1f px)\n", r.Lane, r.Judgement, r.Distance)
	if nil != p.Clicker {
		p.Clicker.Play(r.Judgement)
	}
}

// Frame runs one tick: pending input is queued, the game advances and the
// frame is drawn. It returns false once a quit was requested, after the
// events before the quit have been applied.
func (p *Program) Frame(duration time.Duration) bool {
	quit := false
	for n := len(p.events); n > 0 && !quit; n-- {
		ev := <-p.events
		if ev.Kind == game.Quit {
			quit = true
			continue
		}
		p.Game.Queue(ev)
	}

	p.Game.Tick()

	if err := p.Renderer.Draw(p.Game.State(), p.Game.Track); nil != err {
		p.err = fmt.Errorf("unable to draw frame: %w", err)
		return false
	}
	return !quit
}

// Run plays until a quit, ctx is done or a frame cannot be drawn. The input
// source has released the terminal by the time Run returns.
func (p *Program) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wait, err := p.Source.Run(ctx, p.events)
	if nil != err {
		return err
	}
	render.RenderLoop(ctx, p.Config.FramePeriod, p.Frame)
	cancel()
	wait()

	s := p.Game.State()
	log.Printf("finished with score %v after %v ticks\n", s.Score, s.Ticks)
	return p.err
}
