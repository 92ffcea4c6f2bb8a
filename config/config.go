// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config defines the settings of the pipes program and
// how they are loaded and reloaded.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"cogentcore.org/pipes/cli"
	"cogentcore.org/pipes/math32"
	"cogentcore.org/pipes/pipes"
)

// Modes are the ways the program presents the simulation.
type Modes int32

const (
	// Window draws with the GPU in a desktop window.
	Window Modes = iota

	// Term draws in the terminal.
	Term

	// Headless runs without drawing, for the observer stream or snapshots.
	Headless

	// Watch mirrors a remote observer stream and draws it in the terminal.
	Watch

	ModesN
)

var modeNames = [ModesN]string{"window", "term", "headless", "watch"}

func (m Modes) String() string {
	if m < 0 || m >= ModesN {
		return fmt.Sprintf("Modes(%d)", int32(m))
	}
	return modeNames[m]
}

func (m Modes) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Modes) UnmarshalText(b []byte) error {
	for i, nm := range modeNames {
		if nm == string(b) {
			*m = Modes(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid mode (window, term, headless or watch)", string(b))
}

// Duration is a [time.Duration] that reads and writes in config
// files as a string such as "50ms".
type Duration time.Duration

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// CameraConfig has the orbit camera settings.
type CameraConfig struct {

	// Radius is the horizontal distance of the camera from the vertical axis.
	Radius float32 `default:"22" desc:"camera orbit radius"`

	// Height is the camera height.
	Height float32 `default:"15" desc:"camera height"`

	// Speed is the orbit rate in radians per second.
	Speed float32 `default:"0.08" desc:"camera orbit speed in radians per second"`

	// FOV is the vertical field of view in degrees.
	FOV float32 `default:"45" desc:"vertical field of view in degrees"`
}

// Config has all the settings of the pipes program.
type Config struct {

	// Mode determines how the simulation is presented.
	Mode Modes `default:"window" desc:"presentation: window, term, headless or watch"`

	// Grid is the size of the grid in cells along X, Y and Z.
	Grid []int `default:"20,20,20" desc:"grid size in cells along x,y,z"`

	// Tick is the interval between growth steps.
	Tick Duration `default:"50ms" desc:"interval between growth steps"`

	// StartAttempts is the number of random cells tried when starting
	// a pipe before the grid is cleared.
	StartAttempts int `default:"3" desc:"random cells tried when starting a pipe before clearing the grid"`

	// Seed seeds the random source. Zero seeds it from the time.
	Seed int64 `default:"0" desc:"random seed; 0 seeds from the time"`

	// ColorMode determines how each new pipe's color is drawn.
	ColorMode pipes.ColorModes `default:"rgb" desc:"pipe colors: rgb or hsb"`

	// ExcludeReverse excludes the direction opposite the current one
	// when growing, in addition to the occupancy test.
	ExcludeReverse bool `default:"true" desc:"never consider growing back the way a pipe came"`

	Camera CameraConfig

	// Width is the initial window width in pixels.
	Width int `default:"1280" desc:"window width"`

	// Height is the initial window height in pixels.
	Height int `default:"720" desc:"window height"`

	// Frame is the interval between rendered frames.
	Frame Duration `default:"16ms" desc:"frame interval"`

	// Ticks stops a headless run after this many growth steps.
	// Zero runs until interrupted.
	Ticks int `default:"0" desc:"headless: stop after this many growth steps (0 = forever)"`

	// Snapshot is a PNG or other image file written at the end of a
	// headless run.
	Snapshot string `desc:"headless: write an image of the final state to this file"`

	// Observer is the address to serve the observer stream on, such as
	// "127.0.0.1:8420". Empty disables it. In watch mode it is the
	// address to connect to.
	Observer string `desc:"observer stream address (serve, or connect in watch mode)"`

	// Watch reloads the config file when it changes.
	Watch bool `desc:"reload the config file when it changes"`

	// Verbose turns on debug logging.
	Verbose bool `flag:"verbose" short:"v" desc:"debug logging"`
}

// GridSize returns [Config.Grid] as a vector.
func (cfg *Config) GridSize() math32.Vector3i {
	return math32.Vec3i(int32(cfg.Grid[0]), int32(cfg.Grid[1]), int32(cfg.Grid[2]))
}

// Validate returns an error if any setting is out of range.
func (cfg *Config) Validate() error {
	if len(cfg.Grid) != 3 {
		return fmt.Errorf("config: grid must have 3 dimensions, not %d", len(cfg.Grid))
	}
	for _, d := range cfg.Grid {
		if d <= 0 {
			return fmt.Errorf("config: grid dimensions must be positive: %v", cfg.Grid)
		}
	}
	if cfg.Tick <= 0 {
		return fmt.Errorf("config: tick must be positive: %v", cfg.Tick)
	}
	if cfg.StartAttempts < 0 {
		return fmt.Errorf("config: start attempts must not be negative: %d", cfg.StartAttempts)
	}
	if cfg.Mode == Watch && cfg.Observer == "" {
		return fmt.Errorf("config: watch mode needs an observer address")
	}
	return nil
}

// Options returns the [cli.Options] for the pipes program.
func Options() *cli.Options {
	opts := cli.DefaultOptions("pipes")
	opts.DefaultFile = "pipes.toml"
	return opts
}

// Load returns the config from defaults, the config file and args,
// along with the config file used, if any.
func Load(args []string) (*Config, string, error) {
	cfg := &Config{}
	file, err := cli.Parse(cfg, args, Options())
	if err != nil {
		return nil, file, err
	}
	return cfg, file, cfg.Validate()
}

// WatchFile sends a freshly loaded config on the returned channel each
// time file changes, until ctx is done. Command line args keep taking
// precedence over the file. Invalid configs are logged and skipped.
func WatchFile(ctx context.Context, file string, args []string) (<-chan *Config, error) {
	ch := make(chan *Config, 1)
	var mu sync.Mutex
	err := cli.Watch(ctx, file, func() {
		cfg := &Config{}
		if err := cli.Reload(cfg, file, args, Options()); err != nil {
			slog.Error("config: reload", "file", file, "err", err)
			return
		}
		if err := cfg.Validate(); err != nil {
			slog.Error("config: reload", "file", file, "err", err)
			return
		}
		slog.Info("config: reloaded", "file", file)
		mu.Lock()
		defer mu.Unlock()
		select {
		case ch <- cfg:
		default:
			// replace a pending config nobody has taken yet
			select {
			case <-ch:
			default:
			}
			ch <- cfg
		}
	})
	if err != nil {
		return nil, err
	}
	return ch, nil
}
