// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package main

import (
	"context"
	"image"
	"runtime"
	"time"

	"cogentcore.org/pipes/config"
	"cogentcore.org/pipes/gpu"
	"cogentcore.org/pipes/pipes"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func window(ctx context.Context, a *app, cfg *config.Config, is *pipes.Instances) error {
	win, err := gpu.NewWindow(image.Point{cfg.Width, cfg.Height}, "Pipes")
	if err != nil {
		return err
	}
	defer win.Release()
	gp, err := gpu.NewGPU(win.Instance, win.Surface)
	if err != nil {
		return err
	}
	defer gp.Release()
	rd, err := gpu.NewRenderer(gp, win.Surface, win.Size(), is)
	if err != nil {
		return err
	}
	defer rd.Release()
	rd.FOV = cfg.Camera.FOV
	a.Renderer = rd
	return win.Run(ctx, a, time.Duration(cfg.Frame))
}
