// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

// Group is a group of shapes built into one mesh.
type Group struct {
	ShapeBase

	// list of shapes in group
	Shapes []Shape
}

// NewGroup returns a new [Group] of the given shapes.
func NewGroup(shapes ...Shape) *Group {
	return &Group{Shapes: shapes}
}

// N returns number of vertex, index points in this shape element.
func (gp *Group) N() (nVertex, nIndex int) {
	for _, sh := range gp.Shapes {
		nv, ni := sh.N()
		nVertex += nv
		nIndex += ni
	}
	return
}

// Set sets points in given allocated arrays, also updates offsets.
// The group's own Pos and Rot are not applied.
func (gp *Group) Set(vertex, normal []float32, index []uint32) {
	vo := gp.VertexOffset
	io := gp.IndexOffset
	for _, sh := range gp.Shapes {
		sh.SetOffsets(vo, io)
		sh.Set(vertex, normal, index)
		nv, ni := sh.N()
		vo += nv
		io += ni
	}
}
