package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Run drives the viewer until quit: a goroutine pumps terminal events into
// a channel while a ticker paces frames. Δt comes from the time provider,
// not the ticker period, so a stalled terminal does not speed up motion
// afterwards
func (g *Game) Run() {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(g.cfg.TickInterval)
	defer ticker.Stop()

	g.lastTick = g.clock.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !g.HandleEvent(ev) {
				g.log.Info().Msg("quit requested")
				return
			}

		case <-ticker.C:
			now := g.clock.Now()
			dt := now.Sub(g.lastTick).Seconds()
			g.lastTick = now
			g.Tick(dt, now)
			g.Present(now)
		}
	}
}
