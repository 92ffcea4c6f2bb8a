// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/pipes/math32"

// Sphere is a UV sphere centered at the origin.
type Sphere struct {
	ShapeBase

	// Radius of the sphere.
	Radius float32

	// Segments is the number of segments around the Y axis.
	Segments int

	// Elevations is the number of bands from pole to pole.
	Elevations int
}

// NewSphere returns a new [Sphere].
func NewSphere(radius float32, segments, elevations int) *Sphere {
	return &Sphere{Radius: radius, Segments: max(segments, 3), Elevations: max(elevations, 2)}
}

// N returns number of vertex, index points in this shape element.
func (sp *Sphere) N() (nVertex, nIndex int) {
	return (sp.Segments + 1) * (sp.Elevations + 1), sp.Segments * sp.Elevations * 6
}

// Set sets points in given allocated arrays.
func (sp *Sphere) Set(vertex, normal []float32, index []uint32) {
	row := sp.Segments + 1
	for j := 0; j <= sp.Elevations; j++ {
		phi := math32.Pi * float32(j) / float32(sp.Elevations)
		sinp, cosp := math32.Sincos(phi)
		for i := 0; i <= sp.Segments; i++ {
			th := 2 * math32.Pi * float32(i) / float32(sp.Segments)
			sin, cos := math32.Sincos(th)
			norm := math32.Vec3(sinp*sin, cosp, sinp*cos)
			sp.setPoint(vertex, normal, j*row+i, norm.MulScalar(sp.Radius), norm)
		}
	}
	vo := uint32(sp.VertexOffset)
	ii := sp.IndexOffset
	for j := 0; j < sp.Elevations; j++ {
		for i := 0; i < sp.Segments; i++ {
			a := vo + uint32(j*row+i)
			b := a + uint32(row)
			c := b + 1
			d := a + 1
			copy(index[ii:], []uint32{a, b, c, a, c, d})
			ii += 6
		}
	}
}
