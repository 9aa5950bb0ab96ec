package core

import (
	"context"
	"sync"
	"time"

	"github.com/automoto/digdug/components"
)

// InputSource supplies the intent for the next tick.
type InputSource interface {
	Poll() components.Intent
}

// InputFunc adapts a function to InputSource.
type InputFunc func() components.Intent

func (f InputFunc) Poll() components.Intent { return f() }

// GameLoop steps a Simulation at a fixed tick rate without a window.
type GameLoop struct {
	sim      *Simulation
	input    InputSource
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once

	// OnTick runs after every step; returning false ends the loop.
	OnTick func(sim *Simulation) bool
}

func NewGameLoop(sim *Simulation, input InputSource, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	if input == nil {
		input = InputFunc(func() components.Intent { return components.Intent{} })
	}
	return &GameLoop{
		sim:      sim,
		input:    input,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run ticks until ctx is done, Stop is called, or OnTick returns false.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.sim.log.Info().Int("tick_rate", g.tickRate).Msg("game loop started")
	for {
		select {
		case <-ctx.Done():
			g.sim.log.Info().Uint64("frames", g.sim.Frame()).Msg("game loop stopped")
			return ctx.Err()
		case <-g.stopChan:
			g.sim.log.Info().Uint64("frames", g.sim.Frame()).Msg("game loop stopped")
			return nil
		case <-ticker.C:
			if !g.tick() {
				g.sim.log.Info().Uint64("frames", g.sim.Frame()).Msg("game loop finished")
				return nil
			}
		}
	}
}

// RunFrames steps n frames back to back, ignoring wall time.
func (g *GameLoop) RunFrames(n int) {
	for i := 0; i < n; i++ {
		if !g.tick() {
			return
		}
	}
}

// Stop ends Run. Calling it more than once is safe.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) tick() bool {
	g.sim.Step(1/float64(g.tickRate), g.input.Poll())
	if g.OnTick != nil {
		return g.OnTick(g.sim)
	}
	return true
}
