package ui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/ardentia/internal/game"
)

// Run drives g until it stops or ctx is cancelled. Each iteration draws the
// current screen, then waits for either a key event or the next tick, so
// timed screens advance without blocking input.
func Run(ctx context.Context, g *game.Game, screen *Screen, tick time.Duration) error {
	renderer := NewRenderer(screen)

	done := make(chan struct{})
	defer close(done)
	events := screen.Events(done)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for g.Running() {
		renderer.Render(g.Snapshot())

		select {
		case <-ctx.Done():
			g.Stop()
			return ctx.Err()
		case now := <-ticker.C:
			g.Tick(ctx, now)
		case ev, ok := <-events:
			if !ok {
				g.Stop() // terminal went away
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if key, ok := TranslateKey(ev); ok {
					g.HandleKey(ctx, key)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}
	return nil
}
