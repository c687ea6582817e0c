package input

import (
	"context"
	"fmt"
	"log"

	"git.lost.host/meutraa/lanes/internal/game"
	"github.com/eiannone/keyboard"
)

// KeyboardSource reads keys from the terminal. It is used with the plain
// ANSI backend, which has no event loop of its own.
type KeyboardSource struct {
	Keys KeyMap
}

func (s *KeyboardSource) Event(r rune, key keyboard.Key) (game.Event, bool) {
	switch key {
	case keyboard.KeyEsc:
		return game.Event{Kind: game.PauseToggle}, true
	case keyboard.KeyEnter, keyboard.KeySpace:
		return game.Event{Kind: game.Start}, true
	case keyboard.KeyCtrlC:
		return game.Event{Kind: game.Quit}, true
	}
	if r == 0 {
		return game.Event{}, false
	}
	return s.Keys.Rune(r)
}

// Run opens the keyboard and sends events until ctx is done. The keyboard
// is closed before wait returns.
func (s *KeyboardSource) Run(ctx context.Context, events chan<- game.Event) (func(), error) {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if err := keyboard.Close(); nil != err {
				log.Println("unable to close keyboard", err)
			}
		}()
		s.Pump(ctx, keys, events)
	}()
	return func() { <-done }, nil
}

// Pump resolves key presses into events until ctx is done or keys is closed.
func (s *KeyboardSource) Pump(ctx context.Context, keys <-chan keyboard.KeyEvent, events chan<- game.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case key, ok := <-keys:
			if !ok {
				return
			}
			if nil != key.Err {
				log.Println("unable to read key", key.Err)
				continue
			}
			ev, ok := s.Event(key.Rune, key.Key)
			if !ok {
				continue
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}
