// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipes

import (
	"image"
	"log/slog"
	"time"

	"cogentcore.org/pipes/math32"
)

// Controls tell the frame loop whether to keep running.
type Controls int32

const (
	// Continue keeps the frame loop running.
	Continue Controls = iota

	// Exit stops the frame loop.
	Exit
)

// EventTypes are the kinds of [Event] delivered by a front end.
type EventTypes int32

const (
	// KeyEvent is a key press.
	KeyEvent EventTypes = iota

	// ResizeEvent reports a new drawable size.
	ResizeEvent

	// CloseEvent is a request to close the window.
	CloseEvent
)

// Keys are the keys the simulation responds to.
type Keys int32

const (
	// KeyOther is any key without a binding.
	KeyOther Keys = iota

	// KeyEscape exits.
	KeyEscape

	// KeyC clears all pipes.
	KeyC
)

// Event is an input event from a front end.
type Event struct {
	Type EventTypes

	// Key is set for [KeyEvent].
	Key Keys

	// Size is set for [ResizeEvent].
	Size image.Point
}

// App is implemented by anything driven by a frame loop.
type App interface {
	// OnEvent handles an input event.
	OnEvent(ev Event) Controls

	// OnUpdate advances the state by dt of wall time.
	OnUpdate(dt time.Duration) Controls

	// OnRender draws the current state.
	OnRender()
}

// Renderer draws the instance groups. Implementations read the
// instances themselves, typically from an [Instances].
type Renderer interface {
	// SetCamera sets the camera position and view matrix.
	SetCamera(eye math32.Vector3, view *math32.Matrix4)

	// Resize changes the drawable size.
	Resize(size image.Point)

	// Render draws one frame.
	Render() error
}

// Simulation is the [App] that grows pipes on a fixed tick and
// orbits the camera around them.
type Simulation struct {

	// Pipes is the growth state machine. It is nil when only
	// viewing groups that something else grows.
	Pipes *Pipes

	// Clock converts frame times into growth ticks.
	Clock Clock

	// Camera orbits the grid.
	Camera Orbit

	// Renderer draws frames. It may be nil for headless runs.
	Renderer Renderer

	// Paused stops growth and camera motion while still rendering.
	Paused bool
}

// NewSimulation returns a new [Simulation] driving p.
func NewSimulation(p *Pipes, tick time.Duration, rend Renderer) *Simulation {
	return &Simulation{
		Pipes:    p,
		Clock:    Clock{Tick: tick},
		Camera:   NewOrbit(),
		Renderer: rend,
	}
}

func (sm *Simulation) OnEvent(ev Event) Controls {
	switch ev.Type {
	case CloseEvent:
		return Exit
	case ResizeEvent:
		if sm.Renderer != nil && ev.Size.X > 0 && ev.Size.Y > 0 {
			sm.Renderer.Resize(ev.Size)
		}
	case KeyEvent:
		switch ev.Key {
		case KeyEscape:
			return Exit
		case KeyC:
			if sm.Pipes == nil {
				break
			}
			sm.Pipes.ClearAll()
			sm.Clock.Reset()
		}
	}
	return Continue
}

func (sm *Simulation) OnUpdate(dt time.Duration) Controls {
	if sm.Paused {
		return Continue
	}
	for range sm.Clock.Advance(dt) {
		if sm.Pipes != nil {
			sm.Pipes.Grow()
		}
	}
	sm.Camera.Update(dt)
	return Continue
}

func (sm *Simulation) OnRender() {
	if sm.Renderer == nil {
		return
	}
	sm.Renderer.SetCamera(sm.Camera.Eye(), sm.Camera.View())
	if err := sm.Renderer.Render(); err != nil {
		slog.Error("pipes: render", "err", err)
	}
}
