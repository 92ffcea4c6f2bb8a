// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pipes grows random 3D pipes through a grid, drawing them in
// a window, in the terminal, or not at all.
//
//	pipes [--mode window|term|headless|watch] [--config pipes.toml] [flags]
//
// Press c to clear all pipes and Esc to quit.
package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cogentcore.org/pipes/base/errors"
	"cogentcore.org/pipes/base/logx"
	"cogentcore.org/pipes/base/randx"
	"cogentcore.org/pipes/config"
	"cogentcore.org/pipes/math32"
	"cogentcore.org/pipes/observer"
	"cogentcore.org/pipes/pipes"
	"cogentcore.org/pipes/raster"
	"cogentcore.org/pipes/term"
	"github.com/gdamore/tcell/v2"
)

func main() {
	logx.SetDefaultLogger()
	cfg, file, err := config.Load(os.Args[1:])
	if err != nil {
		slog.Error("pipes: config", "err", err)
		os.Exit(2)
	}
	setLevel(cfg)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, cfg, file); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("pipes", "err", err)
		os.Exit(1)
	}
}

// baseLevel is the log level without -verbose.
var baseLevel = logx.UserLevel

func setLevel(cfg *config.Config) {
	if cfg.Verbose {
		logx.SetLevel(slog.LevelDebug)
	} else {
		logx.SetLevel(baseLevel)
	}
}

func run(ctx context.Context, cfg *config.Config, file string) error {
	if cfg.Mode == config.Watch {
		return watch(ctx, cfg)
	}
	size := cfg.GridSize()
	is := pipes.NewInstances(size.Volume())
	var groups pipes.InstanceGroups = is
	if cfg.Observer != "" {
		srv := observer.NewServer(is, size)
		groups = srv.Groups
		go func() {
			if err := srv.ListenAndServe(ctx, cfg.Observer); err != nil {
				slog.Error("pipes: observer", "addr", cfg.Observer, "err", err)
			}
		}()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = randx.NewSeed()
	}
	slog.Info("pipes: start", "mode", cfg.Mode, "grid", size, "seed", seed)
	p := pipes.New(size, groups, randx.NewSysRand(seed))
	a := newApp(pipes.NewSimulation(p, time.Duration(cfg.Tick), nil), cfg)
	if cfg.Watch {
		if file == "" {
			slog.Warn("pipes: no config file to watch")
		} else {
			configs, err := config.WatchFile(ctx, file, os.Args[1:])
			if err != nil {
				return err
			}
			a.configs = configs
		}
	}
	defer func() {
		st := p.Stats()
		slog.Info("pipes: done", "pipes", st.Pipes, "segments", st.Segments, "boxed", st.BoxedIn, "resets", st.Resets)
	}()
	switch cfg.Mode {
	case config.Window:
		return window(ctx, a, cfg, is)
	case config.Term:
		return terminal(ctx, a, cfg, is)
	}
	return headless(ctx, a, cfg, is)
}

// headless grows without drawing, for a fixed number of ticks or until
// ctx is done, and then optionally writes a snapshot image.
func headless(ctx context.Context, a *app, cfg *config.Config, is *pipes.Instances) error {
	if cfg.Ticks > 0 {
		for range cfg.Ticks {
			if ctx.Err() != nil {
				break
			}
			a.Pipes.Grow()
		}
	} else if err := pipes.Run(ctx, a, nil, time.Duration(cfg.Frame)); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if cfg.Snapshot == "" {
		return nil
	}
	rd := raster.NewRenderer(is, image.Point{cfg.Width, cfg.Height})
	rd.FOV = cfg.Camera.FOV
	rd.SetCamera(a.Camera.Eye(), a.Camera.View())
	if err := rd.Render(); err != nil {
		return err
	}
	return rd.Save(cfg.Snapshot)
}

// openScreen starts a tcell screen. Logging is silenced while the
// screen owns the terminal.
func openScreen() (tcell.Screen, func(), error) {
	sc, err := tcell.NewScreen()
	if err != nil {
		return nil, nil, err
	}
	if err := sc.Init(); err != nil {
		return nil, nil, err
	}
	prev := slog.Default()
	slog.SetDefault(slog.New(logx.NewHandler(io.Discard)))
	return sc, func() {
		sc.Fini()
		slog.SetDefault(prev)
	}, nil
}

func terminal(ctx context.Context, a *app, cfg *config.Config, is *pipes.Instances) error {
	sc, done, err := openScreen()
	if err != nil {
		return err
	}
	defer done()
	rd := term.NewRenderer(sc, is)
	rd.FOV = cfg.Camera.FOV
	rd.Status = func() string {
		st := a.Pipes.Stats()
		return fmt.Sprintf(" pipes %d  segments %d  resets %d  [c] clear  [esc] quit", st.Pipes, st.Segments, st.Resets)
	}
	a.Renderer = rd
	return pipes.Run(ctx, a, term.Events(sc), time.Duration(cfg.Frame))
}

// watch mirrors a remote simulation's observer stream and draws it in
// the terminal with a local camera.
func watch(ctx context.Context, cfg *config.Config) error {
	is := pipes.NewInstances(0)
	sc, done, err := openScreen()
	if err != nil {
		return err
	}
	defer done()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	errs := make(chan error, 1)
	url := "ws://" + cfg.Observer + observer.Path
	go func() {
		errs <- observer.Mirror(ctx, url, is, func(grid math32.Vector3i) {
			is.SetCapacity(grid.Volume())
		})
		cancel()
	}()

	a := newApp(pipes.NewSimulation(nil, time.Duration(cfg.Tick), nil), cfg)
	rd := term.NewRenderer(sc, is)
	rd.FOV = cfg.Camera.FOV
	rd.Status = func() string {
		return fmt.Sprintf(" watching %s  instances %d  [esc] quit", cfg.Observer, is.Total())
	}
	a.Renderer = rd
	err = pipes.Run(ctx, a, term.Events(sc), time.Duration(cfg.Frame))
	cancel()
	if merr := <-errs; merr != nil {
		return merr
	}
	return err
}
