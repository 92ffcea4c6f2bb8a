// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates indexed triangle meshes for simple
// solid shapes that can be composed into groups.
package shape

import "cogentcore.org/pipes/math32"

// Shape is an interface for all shape-constructing elements.
type Shape interface {
	// N returns number of vertex, index points in this shape element.
	N() (nVertex, nIndex int)

	// Offsets returns starting offset for vertices, indexes in full shape array,
	// in terms of points, not floats.
	Offsets() (vertexOffset, indexOffset int)

	// SetOffsets sets starting offset for vertices, indexes in full shape array,
	// in terms of points, not floats.
	SetOffsets(vertexOffset, indexOffset int)

	// Set sets points in given allocated arrays, which hold 3 floats
	// per vertex for positions and normals.
	Set(vertex, normal []float32, index []uint32)
}

// ShapeBase is the base shape element.
type ShapeBase struct {

	// vertex offset, in points
	VertexOffset int

	// index offset, in points
	IndexOffset int

	// Pos is a position offset applied after Rot, to enable composition.
	Pos math32.Vector3

	// Rot is a rotation applied to the shape. The zero value is no rotation.
	Rot math32.Quat
}

// Offsets returns starting offset for vertices, indexes in full shape array,
// in terms of points, not floats.
func (sb *ShapeBase) Offsets() (vertexOffset, indexOffset int) {
	return sb.VertexOffset, sb.IndexOffset
}

// SetOffsets sets starting offsets for vertices, indexes in full shape array.
func (sb *ShapeBase) SetOffsets(vertexOffset, indexOffset int) {
	sb.VertexOffset, sb.IndexOffset = vertexOffset, indexOffset
}

// setPoint sets vertex i (relative to VertexOffset) from a local
// position and normal, applying Rot and Pos.
func (sb *ShapeBase) setPoint(vertex, normal []float32, i int, pos, norm math32.Vector3) {
	if sb.Rot != (math32.Quat{}) {
		pos = pos.MulQuat(sb.Rot)
		norm = norm.MulQuat(sb.Rot)
	}
	idx := (sb.VertexOffset + i) * 3
	pos.Add(sb.Pos).ToSlice(vertex, idx)
	norm.ToSlice(normal, idx)
}

// Mesh is a fully built indexed triangle mesh.
type Mesh struct {
	Vertex []float32
	Normal []float32
	Index  []uint32
}

// NVertex returns the number of vertices.
func (ms *Mesh) NVertex() int {
	return len(ms.Vertex) / 3
}

// Point returns vertex i.
func (ms *Mesh) Point(i int) math32.Vector3 {
	return math32.Vec3(ms.Vertex[i*3], ms.Vertex[i*3+1], ms.Vertex[i*3+2])
}

// Norm returns the normal of vertex i.
func (ms *Mesh) Norm(i int) math32.Vector3 {
	return math32.Vec3(ms.Normal[i*3], ms.Normal[i*3+1], ms.Normal[i*3+2])
}

// Build allocates arrays for the given shape and sets them.
func Build(sh Shape) *Mesh {
	nv, ni := sh.N()
	ms := &Mesh{
		Vertex: make([]float32, nv*3),
		Normal: make([]float32, nv*3),
		Index:  make([]uint32, ni),
	}
	sh.SetOffsets(0, 0)
	sh.Set(ms.Vertex, ms.Normal, ms.Index)
	return ms
}
