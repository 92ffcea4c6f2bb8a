// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipes

import (
	"time"

	"cogentcore.org/pipes/base/errors"
	"cogentcore.org/pipes/math32"
)

// Orbit is a camera circling the vertical axis at a fixed radius and
// height, always looking at the origin.
type Orbit struct {

	// Radius is the horizontal distance from the vertical axis.
	Radius float32

	// Height is the camera's Y coordinate.
	Height float32

	// Speed is the orbit rate in radians per second.
	Speed float32

	// Angle is the current orbit angle in radians, in [0, 2π).
	Angle float32
}

// NewOrbit returns an [Orbit] with the standard viewing parameters.
func NewOrbit() Orbit {
	return Orbit{Radius: 22, Height: 15, Speed: 0.08}
}

// Update advances the orbit angle by dt.
func (o *Orbit) Update(dt time.Duration) {
	o.Angle = math32.Mod(o.Angle+float32(dt.Seconds())*o.Speed, 2*math32.Pi)
	if o.Angle < 0 {
		o.Angle += 2 * math32.Pi
	}
}

// Eye returns the camera position.
func (o *Orbit) Eye() math32.Vector3 {
	sin, cos := math32.Sincos(o.Angle)
	return math32.Vec3(sin*o.Radius, o.Height, cos*o.Radius)
}

// View returns the view matrix looking from [Orbit.Eye] at the origin.
func (o *Orbit) View() *math32.Matrix4 {
	eye := o.Eye()
	cam := math32.NewLookAt(eye, math32.Vector3{}, math32.Vec3(0, 1, 0))
	cam[12], cam[13], cam[14] = eye.X, eye.Y, eye.Z
	return errors.Log1(cam.Inverse())
}
