package screen

import (
	"context"
	"time"

	"Pong2D/config"
	"Pong2D/core"
)

// RunHeadless ticks the game with no surface and no input. It stops after
// s.Ticks ticks, or when ctx is done if s.Ticks is 0.
func RunHeadless(ctx context.Context, g *core.Game, s config.Settings) error {
	ticker := time.NewTicker(s.TickInterval())
	defer ticker.Stop()

	for n := 0; s.Ticks == 0 || n < s.Ticks; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		g.Tick(nil)
	}
	return nil
}
