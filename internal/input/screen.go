package input

import (
	"context"

	"git.lost.host/meutraa/lanes/internal/game"
	"github.com/gdamore/tcell/v2"
)

// ScreenSource reads keys and mouse presses from a tcell screen. A press of
// the primary button acts as a touch on the lane under the pointer.
type ScreenSource struct {
	Screen   tcell.Screen
	Keys     KeyMap
	Geometry game.Geometry

	pressed bool
}

func (s *ScreenSource) Event(ev tcell.Event) (game.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape:
			return game.Event{Kind: game.PauseToggle}, true
		case tcell.KeyEnter:
			return game.Event{Kind: game.Start}, true
		case tcell.KeyCtrlC:
			return game.Event{Kind: game.Quit}, true
		case tcell.KeyRune:
			return s.Keys.Rune(ev.Rune())
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		// Only the press counts, dragging with the button held does not
		pressed := down && !s.pressed
		s.pressed = down
		if !pressed {
			return game.Event{}, false
		}
		x, _ := ev.Position()
		cols, _ := s.Screen.Size()
		if cols <= 0 {
			return game.Event{}, false
		}
		lane := LaneAt((float64(x)+0.5)*s.Geometry.Width/float64(cols), s.Geometry)
		if lane < 0 {
			return game.Event{}, false
		}
		return game.Activate(lane), true
	}
	return game.Event{}, false
}

// Run polls the screen until it is finalised or ctx is done. Waiting wakes
// the poller with an interrupt so it notices the cancelled context.
func (s *ScreenSource) Run(ctx context.Context, events chan<- game.Event) (func(), error) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			tev := s.Screen.PollEvent()
			if nil == tev || nil != ctx.Err() {
				return
			}
			ev, ok := s.Event(tev)
			if !ok {
				continue
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return func() {
		s.Screen.PostEvent(tcell.NewEventInterrupt(nil))
		<-done
	}, nil
}
