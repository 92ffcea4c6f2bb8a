// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package gpu

import (
	"context"
	"image"
	"time"

	"cogentcore.org/pipes/base/errors"
	"cogentcore.org/pipes/pipes"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: this file contains the glfw dependencies, for desktop platform builds.

// Init initializes glfw for windowed use.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts down glfw. Call as last thing before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// Window is a glfw window with a WebGPU surface. Its callbacks queue
// [pipes.Event]s that [Window.Run] delivers to the app.
type Window struct {
	Window   *glfw.Window
	Instance *wgpu.Instance
	Surface  *wgpu.Surface

	events []pipes.Event
}

// NewWindow calls [Init] and opens a window of the given size.
func NewWindow(size image.Point, title string) (*Window, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		Terminate()
		return nil, err
	}
	inst := wgpu.CreateInstance(nil)
	w := &Window{
		Window:   window,
		Instance: inst,
		Surface:  inst.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window)),
	}
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.events = append(w.events, pipes.Event{Type: pipes.ResizeEvent, Size: image.Point{width, height}})
	})
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		w.events = append(w.events, pipes.Event{Type: pipes.KeyEvent, Key: mapKey(key)})
	})
	window.SetCloseCallback(func(_ *glfw.Window) {
		w.events = append(w.events, pipes.Event{Type: pipes.CloseEvent})
	})
	return w, nil
}

// mapKey returns the binding for a glfw key.
func mapKey(key glfw.Key) pipes.Keys {
	switch key {
	case glfw.KeyEscape:
		return pipes.KeyEscape
	case glfw.KeyC:
		return pipes.KeyC
	}
	return pipes.KeyOther
}

// Size returns the current framebuffer size.
func (w *Window) Size() image.Point {
	width, height := w.Window.GetFramebufferSize()
	return image.Point{width, height}
}

// Run is the frame loop of the window, which must be called on the
// main thread. It polls events, delivers them to app and then updates
// and renders once per frame, until the app exits or ctx is done.
func (w *Window) Run(ctx context.Context, app pipes.App, frame time.Duration) error {
	if frame <= 0 {
		frame = pipes.DefaultFrame
	}
	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	last := time.Now()
	for {
		glfw.PollEvents()
		events := w.events
		w.events = nil
		for _, ev := range events {
			if app.OnEvent(ev) == pipes.Exit {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if app.OnUpdate(dt) == pipes.Exit {
				return nil
			}
			app.OnRender()
		}
	}
}

// Release destroys the surface and window and terminates glfw.
func (w *Window) Release() {
	if w.Surface != nil {
		w.Surface.Release()
		w.Surface = nil
	}
	w.Window.Destroy()
	Terminate()
}
