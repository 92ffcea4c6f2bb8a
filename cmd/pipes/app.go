// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"slices"
	"time"

	"cogentcore.org/pipes/config"
	"cogentcore.org/pipes/pipes"
)

// app is the [pipes.Simulation] plus config reloading and frame rate
// logging.
type app struct {
	*pipes.Simulation

	// configs delivers reloaded configs; nil when not watching.
	configs <-chan *config.Config

	grid   []int
	frames int
	last   time.Time
}

func newApp(sm *pipes.Simulation, cfg *config.Config) *app {
	a := &app{Simulation: sm, grid: cfg.Grid, last: time.Now()}
	a.apply(cfg)
	return a
}

// apply sets everything that can change while running.
func (a *app) apply(cfg *config.Config) {
	a.Clock.Tick = time.Duration(cfg.Tick)
	a.Camera.Radius = cfg.Camera.Radius
	a.Camera.Height = cfg.Camera.Height
	a.Camera.Speed = cfg.Camera.Speed
	if p := a.Pipes; p != nil {
		p.StartAttempts = cfg.StartAttempts
		p.ExcludeReverse = cfg.ExcludeReverse
		p.ColorMode = cfg.ColorMode
	}
	if !slices.Equal(cfg.Grid, a.grid) {
		slog.Warn("pipes: grid size changes need a restart", "grid", a.grid, "new", cfg.Grid)
	}
	setLevel(cfg)
}

func (a *app) OnUpdate(dt time.Duration) pipes.Controls {
	select {
	case cfg := <-a.configs:
		a.apply(cfg)
	default:
	}
	return a.Simulation.OnUpdate(dt)
}

func (a *app) OnRender() {
	a.Simulation.OnRender()
	a.frames++
	if el := time.Since(a.last); el >= time.Second {
		slog.Debug("pipes: frame rate", "fps", float64(a.frames)/el.Seconds())
		a.frames = 0
		a.last = time.Now()
	}
}
