// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/pipes/cli"
	"cogentcore.org/pipes/math32"
	"cogentcore.org/pipes/pipes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, file, err := Load(nil)
	require.NoError(t, err)
	assert.Empty(t, file)
	assert.Equal(t, Window, cfg.Mode)
	assert.Equal(t, math32.Vec3i(20, 20, 20), cfg.GridSize())
	assert.Equal(t, Duration(50*time.Millisecond), cfg.Tick)
	assert.Equal(t, 3, cfg.StartAttempts)
	assert.Equal(t, pipes.ColorRGB, cfg.ColorMode)
	assert.True(t, cfg.ExcludeReverse)
	assert.InDelta(t, 22, cfg.Camera.Radius, 1e-6)
	assert.InDelta(t, 15, cfg.Camera.Height, 1e-6)
	assert.InDelta(t, 0.08, cfg.Camera.Speed, 1e-6)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Empty(t, cfg.Observer)
}

func TestFlags(t *testing.T) {
	cfg, _, err := Load([]string{"--mode", "term", "--grid", "8,6,4", "--tick", "10ms", "--color-mode", "hsb", "--exclude-reverse=false", "--camera-speed", "0.5", "-v"})
	require.NoError(t, err)
	assert.Equal(t, Term, cfg.Mode)
	assert.Equal(t, math32.Vec3i(8, 6, 4), cfg.GridSize())
	assert.Equal(t, Duration(10*time.Millisecond), cfg.Tick)
	assert.Equal(t, pipes.ColorHSB, cfg.ColorMode)
	assert.False(t, cfg.ExcludeReverse)
	assert.InDelta(t, 0.5, cfg.Camera.Speed, 1e-6)
	assert.True(t, cfg.Verbose)
}

func TestValidate(t *testing.T) {
	for _, args := range [][]string{
		{"--grid", "1,2"},
		{"--grid", "1,0,2"},
		{"--tick", "0s"},
		{"--start-attempts", "-1"},
		{"--mode", "watch"},
	} {
		_, _, err := Load(args)
		assert.Error(t, err, args)
	}
	_, _, err := Load([]string{"--mode", "film"})
	assert.Error(t, err)
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "pipes.yaml")
	require.NoError(t, os.WriteFile(file, []byte("mode: headless\ntick: 1s\ncolormode: hsb\ncamera:\n  radius: 30\n"), 0o644))
	cfg, used, err := Load([]string{"--config", file, "--tick", "20ms"})
	require.NoError(t, err)
	assert.Equal(t, file, used)
	assert.Equal(t, Headless, cfg.Mode)
	assert.Equal(t, Duration(20*time.Millisecond), cfg.Tick)
	assert.Equal(t, pipes.ColorHSB, cfg.ColorMode)
	assert.InDelta(t, 30, cfg.Camera.Radius, 1e-6)

	saved := filepath.Join(dir, "saved.toml")
	require.NoError(t, cli.Save(cfg, saved))
	re, _, err := Load([]string{"--config", saved})
	require.NoError(t, err)
	assert.Equal(t, cfg, re)
}

func TestWatchFile(t *testing.T) {
	old := cli.WatchDelay
	cli.WatchDelay = 10 * time.Millisecond
	defer func() { cli.WatchDelay = old }()

	dir := t.TempDir()
	file := filepath.Join(dir, "pipes.toml")
	require.NoError(t, os.WriteFile(file, []byte("Tick = \"50ms\"\n"), 0o644))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := WatchFile(ctx, file, []string{"--config", file, "--color-mode", "hsb"})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(file, []byte("Tick = \"80ms\"\n"), 0o644))
	select {
	case cfg := <-ch:
		assert.Equal(t, Duration(80*time.Millisecond), cfg.Tick)
		assert.Equal(t, pipes.ColorHSB, cfg.ColorMode)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload")
	}
}
