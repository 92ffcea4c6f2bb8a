// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package term draws the pipes in a terminal with tcell, one shaded
// cell per projected pixel, and turns terminal input into events.
package term

import (
	"image"

	"cogentcore.org/pipes/math32"
	"cogentcore.org/pipes/pipes"
	"cogentcore.org/pipes/raster"
	"github.com/gdamore/tcell/v2"
)

// CellAspect is the width over the height of a terminal cell.
const CellAspect = 0.5

// Renderer draws [pipes.Instances] on a tcell screen. It implements
// [pipes.Renderer].
type Renderer struct {
	Screen    tcell.Screen
	Instances *pipes.Instances

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Lighting is the scene lighting in world space.
	Lighting pipes.Lighting

	// Status, if set, returns a line drawn at the bottom of the screen.
	Status func() string

	view   math32.Matrix4
	points []raster.Point
}

// NewRenderer returns a new [Renderer] drawing is on screen.
func NewRenderer(screen tcell.Screen, is *pipes.Instances) *Renderer {
	rd := &Renderer{
		Screen:    screen,
		Instances: is,
		FOV:       raster.DefaultFOV,
		Lighting:  pipes.DefaultLighting(),
	}
	rd.view.SetIdentity()
	return rd
}

func (rd *Renderer) SetCamera(eye math32.Vector3, view *math32.Matrix4) {
	rd.view = *view
}

// Resize syncs the screen; the drawing size always follows the screen.
func (rd *Renderer) Resize(size image.Point) {
	rd.Screen.Sync()
}

func (rd *Renderer) Render() error {
	sc := rd.Screen
	sc.Clear()
	w, h := sc.Size()
	pr := raster.NewProjection(&rd.view, rd.FOV, image.Point{w, h}, CellAspect)
	lt := pr.ViewLighting(rd.Lighting)
	rd.points = pr.Points(rd.Instances, rd.points[:0])
	for i := range rd.points {
		rd.paint(&rd.points[i], &lt, w, h)
	}
	if rd.Status != nil {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
		for i, r := range []rune(rd.Status()) {
			if i >= w {
				break
			}
			sc.SetContent(i, h-1, r, nil, style)
		}
	}
	sc.Show()
	return nil
}

// paint fills the cells covered by one ball.
func (rd *Renderer) paint(pt *raster.Point, lt *pipes.Lighting, w, h int) {
	b := image.Rect(
		int(math32.Floor(pt.X-pt.RadiusX)), int(math32.Floor(pt.Y-pt.RadiusY)),
		int(pt.X+pt.RadiusX)+1, int(pt.Y+pt.RadiusY)+1,
	).Intersect(image.Rect(0, 0, w, h))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c, ok := pt.Shade(float32(x)+0.5, float32(y)+0.5, lt)
			if !ok {
				continue
			}
			rgb := raster.RGBA(c)
			bg := tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
			rd.Screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(bg))
		}
	}
}
