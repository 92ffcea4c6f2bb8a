// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/pipes/math32"

// Cylinder is an open tube along the Y axis, without end caps.
type Cylinder struct {
	ShapeBase

	// Radius of the tube.
	Radius float32

	// Bottom and Top are the Y extent of the tube.
	Bottom, Top float32

	// Segments is the number of segments around the circumference.
	Segments int
}

// NewCylinder returns a new [Cylinder] spanning bottom to top on Y.
func NewCylinder(radius, bottom, top float32, segments int) *Cylinder {
	return &Cylinder{Radius: radius, Bottom: bottom, Top: top, Segments: max(segments, 3)}
}

// N returns number of vertex, index points in this shape element.
func (cy *Cylinder) N() (nVertex, nIndex int) {
	return (cy.Segments + 1) * 2, cy.Segments * 6
}

// Set sets points in given allocated arrays.
func (cy *Cylinder) Set(vertex, normal []float32, index []uint32) {
	for i := 0; i <= cy.Segments; i++ {
		th := 2 * math32.Pi * float32(i) / float32(cy.Segments)
		sin, cos := math32.Sincos(th)
		norm := math32.Vec3(sin, 0, cos)
		cy.setPoint(vertex, normal, i*2, math32.Vec3(sin*cy.Radius, cy.Bottom, cos*cy.Radius), norm)
		cy.setPoint(vertex, normal, i*2+1, math32.Vec3(sin*cy.Radius, cy.Top, cos*cy.Radius), norm)
	}
	vo := uint32(cy.VertexOffset)
	ii := cy.IndexOffset
	for i := 0; i < cy.Segments; i++ {
		b0 := vo + uint32(i*2)
		t0 := b0 + 1
		b1 := b0 + 2
		t1 := b0 + 3
		copy(index[ii:], []uint32{b0, b1, t1, b0, t1, t0})
		ii += 6
	}
}
