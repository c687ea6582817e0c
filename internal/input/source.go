package input

import (
	"context"

	"git.lost.host/meutraa/lanes/internal/game"
)

// Source delivers resolved events on a channel from its own goroutine.
//
// Run returns once reading has started. The returned wait function blocks
// until the reader has stopped and released everything it opened, and must
// only be called after ctx is done.
type Source interface {
	Run(ctx context.Context, events chan<- game.Event) (wait func(), err error)
}
