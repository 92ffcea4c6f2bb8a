// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"cogentcore.org/pipes/base/iox/imagex"
	"cogentcore.org/pipes/math32"
	"cogentcore.org/pipes/pipes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instanceAt(pos, clr math32.Vector3) pipes.Instance {
	return pipes.Instance{Color: clr, Model: *math32.Matrix4Translation(pos)}
}

func TestProject(t *testing.T) {
	cam := pipes.NewOrbit()
	pr := NewProjection(cam.View(), 45, image.Point{200, 100}, 1)
	x, y, depth, ok := pr.Project(math32.Vector3{})
	require.True(t, ok)
	assert.InDelta(t, 100, x, 1e-3)
	assert.InDelta(t, 50, y, 1e-3)
	assert.InDelta(t, cam.Eye().Length(), depth, 1e-3)

	// +X is to the right when looking from +Z
	x, _, _, ok = pr.Project(math32.Vec3(1, 0, 0))
	require.True(t, ok)
	assert.Greater(t, x, float32(100))
	// +Y is up
	_, y, _, _ = pr.Project(math32.Vec3(0, 1, 0))
	assert.Less(t, y, float32(50))

	front := NewProjection(math32.Identity4(), 45, image.Point{10, 10}, 1)
	_, _, _, ok = front.Project(math32.Vec3(0, 0, 5))
	assert.False(t, ok, "behind the camera")
}

func TestPoints(t *testing.T) {
	is := pipes.NewInstances(8)
	red := math32.Vec3(1, 0, 0)
	require.NoError(t, is.AddInstances(pipes.Straight, instanceAt(math32.Vec3(0, 0, 5), red)))
	require.NoError(t, is.AddInstances(pipes.Single, instanceAt(math32.Vec3(0, 0, -5), red)))
	require.NoError(t, is.AddInstances(pipes.End, instanceAt(math32.Vec3(0, 0, 0), red)))

	cam := pipes.NewOrbit()
	pr := NewProjection(cam.View(), 45, image.Point{80, 40}, 0.5)
	pts := pr.Points(is, nil)
	require.Len(t, pts, 3)
	assert.Equal(t, pipes.Single, pts[0].Group, "farthest first")
	assert.Equal(t, pipes.End, pts[1].Group)
	assert.Equal(t, pipes.Straight, pts[2].Group)
	for _, pt := range pts {
		assert.InDelta(t, 2*pt.RadiusY, pt.RadiusX, 1e-4)
	}
	assert.Greater(t, pts[2].RadiusY, pts[1].RadiusY, "nearer is bigger")
}

func TestShade(t *testing.T) {
	lt := pipes.Lighting{Dirs: []pipes.DirLight{{Pos: math32.Vec3(0, 0, 1), Lumens: 0.5}}, Ambient: 0.2}
	pt := Point{X: 10, Y: 10, RadiusX: 4, RadiusY: 4, Color: math32.Vec3(1, 1, 0)}
	c, ok := pt.Shade(10, 10, &lt)
	require.True(t, ok)
	assertColor := func(want, got math32.Vector3) {
		assert.InDelta(t, want.X, got.X, 1e-5)
		assert.InDelta(t, want.Y, got.Y, 1e-5)
		assert.InDelta(t, want.Z, got.Z, 1e-5)
	}
	assertColor(math32.Vec3(0.7, 0.7, 0), c)
	_, ok = pt.Shade(14.5, 10, &lt)
	assert.False(t, ok)
	// at the rim the normal is perpendicular to the light
	c, ok = pt.Shade(14, 10, &lt)
	require.True(t, ok)
	assertColor(math32.Vec3(0.2, 0.2, 0), c)
}

func TestRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 128, 0, 255}, RGBA(math32.Vec3(1.5, 0.5, -1)))
}

func TestRender(t *testing.T) {
	is := pipes.NewInstances(8)
	size := math32.Vec3i(3, 3, 3)
	require.NoError(t, is.AddInstances(pipes.Single, pipes.Instance{
		Color: math32.Vec3(0.2, 0.6, 1),
		Model: *pipes.LocationMatrix(math32.Vec3i(1, 1, 1), size),
	}))
	rd := NewRenderer(is, image.Point{64, 48})
	cam := pipes.NewOrbit()
	cam.Radius, cam.Height = 4, 2
	rd.SetCamera(cam.Eye(), cam.View())
	require.NoError(t, rd.Render())

	assert.Equal(t, rd.Background, rd.Image.RGBAAt(0, 0))
	center := rd.Image.RGBAAt(32, 24)
	assert.NotEqual(t, rd.Background, center)
	assert.Greater(t, center.B, center.R)
	imagex.Assert(t, rd.Image, "single")

	file := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, rd.Save(file))
	img, _, err := imagex.Open(file)
	require.NoError(t, err)
	assert.Equal(t, rd.Image.Bounds(), img.Bounds())
}
