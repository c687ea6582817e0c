package render

import (
	"context"
	"time"
)

// RenderLoop calls frame once per period until it returns false or ctx is
// done. A frame that overruns its period is followed immediately by the next.
func RenderLoop(ctx context.Context, period time.Duration, frame func(duration time.Duration) bool) {
	startTime := time.Now()
	for {
		now := time.Now()
		deadline := now.Add(period)

		if !frame(now.Sub(startTime)) {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Until(deadline)):
		}
	}
}
