// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"image"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/pipes/base/iox/imagex"
	"cogentcore.org/pipes/config"
	"cogentcore.org/pipes/pipes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadless(t *testing.T) {
	file := filepath.Join(t.TempDir(), "final.png")
	cfg, _, err := config.Load([]string{"--mode", "headless", "--grid", "6,6,6", "--ticks", "200",
		"--seed", "5", "--snapshot", file, "--width", "64", "--height", "48"})
	require.NoError(t, err)
	require.NoError(t, run(context.Background(), cfg, ""))
	img, format, err := imagex.Open(file)
	require.NoError(t, err)
	assert.Equal(t, imagex.PNG, format)
	assert.Equal(t, image.Point{64, 48}, img.Bounds().Size())
}

func TestApply(t *testing.T) {
	cfg, _, err := config.Load([]string{"--mode", "headless", "--grid", "5,5,5"})
	require.NoError(t, err)
	p := pipes.New(cfg.GridSize(), pipes.NewInstances(125), nil)
	a := newApp(pipes.NewSimulation(p, time.Second, nil), cfg)
	assert.Equal(t, 50*time.Millisecond, a.Clock.Tick)
	assert.True(t, p.ExcludeReverse)

	configs := make(chan *config.Config, 1)
	a.configs = configs
	next := *cfg
	next.Tick = config.Duration(10 * time.Millisecond)
	next.ExcludeReverse = false
	next.ColorMode = pipes.ColorHSB
	next.Camera.Radius = 5
	configs <- &next
	a.OnUpdate(0)
	assert.Equal(t, 10*time.Millisecond, a.Clock.Tick)
	assert.False(t, p.ExcludeReverse)
	assert.Equal(t, pipes.ColorHSB, p.ColorMode)
	assert.Equal(t, float32(5), a.Camera.Radius)

	// nothing pending leaves the settings alone
	a.OnUpdate(0)
	assert.Equal(t, 10*time.Millisecond, a.Clock.Tick)
}
