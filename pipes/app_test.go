// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipes

import (
	"context"
	"image"
	"testing"
	"time"

	"cogentcore.org/pipes/base/randx"
	"cogentcore.org/pipes/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordRenderer struct {
	eye    math32.Vector3
	size   image.Point
	frames int
}

func (r *recordRenderer) SetCamera(eye math32.Vector3, view *math32.Matrix4) { r.eye = eye }
func (r *recordRenderer) Resize(size image.Point)                            { r.size = size }
func (r *recordRenderer) Render() error {
	r.frames++
	return nil
}

func newTestSimulation() (*Simulation, *Instances, *recordRenderer) {
	p, is := newTestPipes(math32.Vec3i(20, 20, 20), randx.NewSysRand(11))
	rend := &recordRenderer{}
	return NewSimulation(p, 50*time.Millisecond, rend), is, rend
}

func TestSimulationUpdate(t *testing.T) {
	sm, is, rend := newTestSimulation()
	assert.Equal(t, Continue, sm.OnUpdate(120*time.Millisecond))
	st := sm.Pipes.Stats()
	assert.Equal(t, 1, st.Pipes)
	assert.Equal(t, 1, st.Segments)
	assert.Equal(t, 2, is.Total())
	assert.Equal(t, 20*time.Millisecond, sm.Clock.Pending())

	sm.OnRender()
	assert.Equal(t, 1, rend.frames)
	assert.Equal(t, sm.Camera.Eye(), rend.eye)

	sm.Paused = true
	sm.OnUpdate(time.Second)
	assert.Equal(t, 2, is.Total())
}

func TestSimulationViewOnly(t *testing.T) {
	rend := &recordRenderer{}
	sm := NewSimulation(nil, 50*time.Millisecond, rend)
	angle := sm.Camera.Angle
	assert.Equal(t, Continue, sm.OnUpdate(time.Second))
	assert.NotEqual(t, angle, sm.Camera.Angle)
	assert.Equal(t, Continue, sm.OnEvent(Event{Type: KeyEvent, Key: KeyC}))
	sm.OnRender()
	assert.Equal(t, 1, rend.frames)
}

func TestSimulationEvents(t *testing.T) {
	sm, is, rend := newTestSimulation()
	sm.OnUpdate(time.Second)
	require.Positive(t, is.Total())

	assert.Equal(t, Continue, sm.OnEvent(Event{Type: KeyEvent, Key: KeyC}))
	assert.Equal(t, 0, is.Total())
	assert.Equal(t, 0, sm.Pipes.Grid.Count())

	assert.Equal(t, Continue, sm.OnEvent(Event{Type: KeyEvent, Key: KeyOther}))
	assert.Equal(t, Continue, sm.OnEvent(Event{Type: ResizeEvent, Size: image.Pt(640, 480)}))
	assert.Equal(t, image.Pt(640, 480), rend.size)
	sm.OnEvent(Event{Type: ResizeEvent})
	assert.Equal(t, image.Pt(640, 480), rend.size)

	assert.Equal(t, Exit, sm.OnEvent(Event{Type: KeyEvent, Key: KeyEscape}))
	assert.Equal(t, Exit, sm.OnEvent(Event{Type: CloseEvent}))
}

func TestRun(t *testing.T) {
	sm, is, rend := newTestSimulation()
	events := make(chan Event, 1)
	go func() {
		time.Sleep(200 * time.Millisecond)
		events <- Event{Type: KeyEvent, Key: KeyEscape}
	}()
	require.NoError(t, Run(context.Background(), sm, events, 5*time.Millisecond))
	assert.Positive(t, rend.frames)
	assert.Positive(t, is.Total())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, Run(ctx, sm, nil, 0), context.DeadlineExceeded)

	close(events)
	assert.NoError(t, Run(context.Background(), sm, events, time.Hour))
}
