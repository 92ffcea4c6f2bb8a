// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster draws the instance groups in software, as shaded
// balls at each instance center painted back to front. It serves the
// terminal front end and headless snapshots, where no GPU is present.
package raster

import (
	"cmp"
	"image"
	"slices"

	"cogentcore.org/pipes/math32"
	"cogentcore.org/pipes/pipes"
)

// Radii of the drawn balls, in cell units.
const (
	SegmentRadius = 0.45
	SingleRadius  = 0.3
)

// Point is an instance center projected into image space.
type Point struct {

	// X and Y are the pixel position of the center.
	X, Y float32

	// Depth is the distance in front of the camera.
	Depth float32

	// RadiusX and RadiusY are the pixel radii of the ball.
	RadiusX, RadiusY float32

	Color math32.Vector3
	Group pipes.MeshGroups
}

// Shade returns the color of the ball at pixel (x, y), lit by lt
// in view space, and false if the pixel is outside the ball.
func (pt *Point) Shade(x, y float32, lt *pipes.Lighting) (math32.Vector3, bool) {
	nx := (x - pt.X) / pt.RadiusX
	ny := (pt.Y - y) / pt.RadiusY
	d := nx*nx + ny*ny
	if d > 1 {
		return math32.Vector3{}, false
	}
	norm := math32.Vec3(nx, ny, math32.Sqrt(1-d))
	return pt.Color.MulScalar(min(lt.Shade(norm), 1)), true
}

// Projection projects world points to pixels for a camera.
type Projection struct {

	// Size is the image size in pixels.
	Size image.Point

	// PixelAspect is the width over the height of one pixel,
	// which is about 0.5 for terminal cells.
	PixelAspect float32

	view  math32.Matrix4
	proj  math32.Matrix4
	focal float32
}

// NewProjection returns a perspective [Projection] for the view
// matrix with a vertical field of view of fov degrees.
func NewProjection(view *math32.Matrix4, fov float32, size image.Point, pixelAspect float32) *Projection {
	if pixelAspect <= 0 {
		pixelAspect = 1
	}
	pr := &Projection{Size: size, PixelAspect: pixelAspect, view: *view}
	aspect := float32(1)
	if size.Y > 0 {
		aspect = float32(size.X) * pixelAspect / float32(size.Y)
	}
	pr.proj.SetPerspective(fov, aspect, 0.1, 1000)
	pr.focal = pr.proj[5]
	return pr
}

// Project returns the pixel position of world point p and its depth,
// and false if it is behind the camera.
func (pr *Projection) Project(p math32.Vector3) (x, y, depth float32, ok bool) {
	vp := p.MulMatrix4AsPoint(&pr.view)
	depth = -vp.Z
	if depth <= 0.1 {
		return 0, 0, depth, false
	}
	ndc := vp.MulProjection(&pr.proj)
	x = (ndc.X + 1) / 2 * float32(pr.Size.X)
	y = (1 - ndc.Y) / 2 * float32(pr.Size.Y)
	return x, y, depth, true
}

// ViewLighting returns lt with the lights rotated into view space.
func (pr *Projection) ViewLighting(lt pipes.Lighting) pipes.Lighting {
	vl := pipes.Lighting{Ambient: lt.Ambient, Dirs: make([]pipes.DirLight, len(lt.Dirs))}
	for i, dl := range lt.Dirs {
		vl.Dirs[i] = pipes.DirLight{Pos: dl.Pos.MulMatrix4AsVector(&pr.view), Lumens: dl.Lumens}
	}
	return vl
}

// Points appends the projected instances of all groups to dst,
// sorted from farthest to nearest.
func (pr *Projection) Points(is *pipes.Instances, dst []Point) []Point {
	var insts []pipes.Instance
	for g := range pipes.MeshGroupsN {
		insts, _ = is.Snapshot(g, insts[:0])
		radius := float32(SegmentRadius)
		if g == pipes.Single {
			radius = SingleRadius
		}
		for _, in := range insts {
			x, y, depth, ok := pr.Project(math32.Vec3(in.Model[12], in.Model[13], in.Model[14]))
			if !ok {
				continue
			}
			ry := radius * pr.focal / depth * float32(pr.Size.Y) / 2
			dst = append(dst, Point{
				X: x, Y: y, Depth: depth,
				RadiusX: ry / pr.PixelAspect, RadiusY: ry,
				Color: in.Color, Group: g,
			})
		}
	}
	slices.SortStableFunc(dst, func(a, b Point) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
	return dst
}
