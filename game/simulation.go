package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/systems"
)

// step runs one simulation tick and its telemetry bookkeeping.
func (g *Game) step() {
	start := time.Now()
	systems.Tick(g.state)
	g.tick++
	g.collector.RecordTickDuration(float64(time.Since(start).Nanoseconds()) / 1e6)
	g.flushTelemetry()
}

// UpdateHeadless runs the configured ticks per update flat out, with no
// input handling or pacing.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// Update handles viewer input and runs ticks on the configured wall-clock
// interval. A paused game still processes input.
func (g *Game) Update() {
	g.handleInput()
	if g.paused {
		g.tickAccum = 0
		return
	}

	interval := config.Cfg().Derived.TickInterval
	if interval <= 0 {
		// No pacing configured: tick every frame.
		for i := 0; i < g.stepsPerUpdate; i++ {
			g.step()
		}
		return
	}

	g.tickAccum += rl.GetFrameTime()
	// Cap the backlog so a long frame doesn't trigger a catch-up stampede.
	if g.tickAccum > interval*4 {
		g.tickAccum = interval * 4
	}
	for g.tickAccum >= interval {
		g.tickAccum -= interval
		for i := 0; i < g.stepsPerUpdate; i++ {
			g.step()
		}
	}
}
