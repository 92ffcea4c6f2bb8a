// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"cogentcore.org/pipes/base/iox/imagex"
	"cogentcore.org/pipes/math32"
	"cogentcore.org/pipes/pipes"
)

// DefaultFOV is the default vertical field of view in degrees.
const DefaultFOV = 45

// Renderer draws [pipes.Instances] into an image. It implements
// [pipes.Renderer].
type Renderer struct {

	// Instances are the groups to draw.
	Instances *pipes.Instances

	// Image is the most recently rendered frame.
	Image *image.RGBA

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Background fills the image before drawing.
	Background color.RGBA

	// Lighting is the scene lighting in world space.
	Lighting pipes.Lighting

	view   math32.Matrix4
	points []Point
}

// NewRenderer returns a new [Renderer] of the given size.
func NewRenderer(is *pipes.Instances, size image.Point) *Renderer {
	rd := &Renderer{
		Instances:  is,
		FOV:        DefaultFOV,
		Background: color.RGBA{A: 255},
		Lighting:   pipes.DefaultLighting(),
	}
	rd.view.SetIdentity()
	rd.Resize(size)
	return rd
}

func (rd *Renderer) SetCamera(eye math32.Vector3, view *math32.Matrix4) {
	rd.view = *view
}

func (rd *Renderer) Resize(size image.Point) {
	rd.Image = image.NewRGBA(image.Rectangle{Max: size})
}

// Render draws the current instances into [Renderer.Image].
func (rd *Renderer) Render() error {
	img := rd.Image
	draw.Draw(img, img.Bounds(), image.NewUniform(rd.Background), image.Point{}, draw.Src)
	pr := NewProjection(&rd.view, rd.FOV, img.Bounds().Size(), 1)
	lt := pr.ViewLighting(rd.Lighting)
	rd.points = pr.Points(rd.Instances, rd.points[:0])
	for i := range rd.points {
		Paint(img, &rd.points[i], &lt)
	}
	return nil
}

// Save writes the current image to file, in the format given by
// its extension.
func (rd *Renderer) Save(file string) error {
	slog.Debug("raster: save", "file", file, "size", rd.Image.Bounds().Size())
	return imagex.Save(rd.Image, file)
}

// Paint draws one shaded ball into img.
func Paint(img *image.RGBA, pt *Point, lt *pipes.Lighting) {
	b := image.Rect(
		int(math32.Floor(pt.X-pt.RadiusX)), int(math32.Floor(pt.Y-pt.RadiusY)),
		int(pt.X+pt.RadiusX)+1, int(pt.Y+pt.RadiusY)+1,
	).Intersect(img.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c, ok := pt.Shade(float32(x)+0.5, float32(y)+0.5, lt)
			if !ok {
				continue
			}
			img.SetRGBA(x, y, RGBA(c))
		}
	}
}

// RGBA converts a 0-1 color to [color.RGBA], clamping each component.
func RGBA(c math32.Vector3) color.RGBA {
	cv := func(v float32) uint8 {
		return uint8(math32.Clamp(v, 0, 1)*255 + 0.5)
	}
	return color.RGBA{cv(c.X), cv(c.Y), cv(c.Z), 255}
}
