// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"unsafe"

	"cogentcore.org/pipes/math32"
	"cogentcore.org/pipes/pipes"
	"github.com/cogentcore/webgpu/wgpu"
)

// VertexStride is the size of one mesh vertex: position then normal.
const VertexStride = 6 * 4

// InstanceStride is the size of one packed [pipes.Instance]:
// color then the column-major model matrix.
const InstanceStride = int(unsafe.Sizeof(pipes.Instance{}))

// VertexLayouts returns the per-vertex and per-instance buffer layouts
// matching the shader locations.
func VertexLayouts() []wgpu.VertexBufferLayout {
	inst := []wgpu.VertexAttribute{{
		Format:         wgpu.VertexFormatFloat32x3,
		Offset:         0,
		ShaderLocation: 2,
	}}
	for col := range 4 {
		inst = append(inst, wgpu.VertexAttribute{
			Format:         wgpu.VertexFormatFloat32x4,
			Offset:         uint64(12 + col*16),
			ShaderLocation: uint32(3 + col),
		})
	}
	return []wgpu.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
				{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			},
		},
		{
			ArrayStride: uint64(InstanceStride),
			StepMode:    wgpu.VertexStepModeInstance,
			Attributes:  inst,
		},
	}
}

// Camera is the camera uniform.
type Camera struct {
	ViewProjection math32.Matrix4
}

// NewCamera returns the camera uniform for the given view matrix,
// with a perspective projection of fov degrees.
func NewCamera(view *math32.Matrix4, fov float32, size image.Point) Camera {
	aspect := float32(1)
	if size.Y > 0 {
		aspect = float32(size.X) / float32(size.Y)
	}
	var proj math32.Matrix4
	proj.SetPerspective(fov, aspect, 0.1, 1000)
	return Camera{ViewProjection: *proj.Mul(view)}
}

// DirLight is a directional light shining from Pos toward the origin.
type DirLight struct {
	Pos math32.Vector3

	// Lumens is the brightness of the light.
	Lumens float32
}

// Lights is the lighting uniform. The padding matches the
// uniform layout rules for the trailing scalar.
type Lights struct {
	Dirs    [2]DirLight
	Ambient float32
	pad     [3]float32
}

// NewLights returns the lighting uniform for the first two
// directional lights of lt.
func NewLights(lt pipes.Lighting) Lights {
	ls := Lights{Ambient: lt.Ambient}
	for i, dl := range lt.Dirs[:min(len(lt.Dirs), len(ls.Dirs))] {
		ls.Dirs[i] = DirLight{Pos: dl.Pos.Normal(), Lumens: dl.Lumens}
	}
	return ls
}

// MeshBytes returns the interleaved vertex data of a mesh.
func MeshBytes(vertex, normal []float32) []byte {
	n := len(vertex) / 3
	data := make([]float32, 0, n*6)
	for i := range n {
		data = append(data, vertex[i*3:i*3+3]...)
		data = append(data, normal[i*3:i*3+3]...)
	}
	return wgpu.ToBytes(data)
}
