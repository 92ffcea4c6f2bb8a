// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import (
	"image"
	"testing"
	"time"

	"cogentcore.org/pipes/math32"
	"cogentcore.org/pipes/pipes"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	sc := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sc.Init())
	sc.SetSize(80, 24)
	return sc
}

func TestRender(t *testing.T) {
	sc := newScreen(t)
	defer sc.Fini()
	is := pipes.NewInstances(4)
	require.NoError(t, is.AddInstances(pipes.Single, pipes.Instance{
		Color: math32.Vec3(1, 0.5, 0),
		Model: *math32.Identity4(),
	}))
	rd := NewRenderer(sc, is)
	rd.Status = func() string { return "pipes 1" }
	cam := pipes.NewOrbit()
	cam.Radius, cam.Height = 4, 2
	rd.SetCamera(cam.Eye(), cam.View())
	require.NoError(t, rd.Render())

	_, _, style, _ := sc.GetContent(40, 12)
	_, bg, _ := style.Decompose()
	r, g, b := bg.RGB()
	assert.Greater(t, r, int32(0))
	assert.Greater(t, r, g)
	assert.Equal(t, int32(0), b)

	_, _, style, _ = sc.GetContent(0, 0)
	_, bg, _ = style.Decompose()
	assert.Equal(t, tcell.ColorDefault, bg)

	for i, want := range "pipes 1" {
		got, _, _, _ := sc.GetContent(i, 23)
		assert.Equal(t, want, got)
	}
}

func TestConvert(t *testing.T) {
	keys := map[*tcell.EventKey]pipes.Keys{
		tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone):  pipes.KeyC,
		tcell.NewEventKey(tcell.KeyRune, 'C', tcell.ModShift): pipes.KeyC,
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone):  pipes.KeyEscape,
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone):  pipes.KeyEscape,
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl):   pipes.KeyEscape,
		tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone):  pipes.KeyOther,
	}
	for tev, want := range keys {
		ev, ok := convert(tev)
		require.True(t, ok)
		assert.Equal(t, pipes.KeyEvent, ev.Type)
		assert.Equal(t, want, ev.Key, tev.Name())
	}
	ev, ok := convert(tcell.NewEventResize(100, 30))
	require.True(t, ok)
	assert.Equal(t, pipes.Event{Type: pipes.ResizeEvent, Size: image.Point{100, 30}}, ev)
	_, ok = convert(tcell.NewEventInterrupt(nil))
	assert.False(t, ok)
}

func TestEvents(t *testing.T) {
	sc := newScreen(t)
	events := Events(sc)
	sc.InjectKey(tcell.KeyRune, 'c', tcell.ModNone)
	timeout := time.After(time.Second)
	for found := false; !found; {
		select {
		case ev := <-events:
			found = ev.Type == pipes.KeyEvent && ev.Key == pipes.KeyC
		case <-timeout:
			t.Fatal("no key event")
		}
	}
	sc.Fini()
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-time.After(time.Second):
			t.Fatal("events not closed")
		}
	}
}
