// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"testing"
	"unsafe"

	"cogentcore.org/pipes/gpu/shape"
	"cogentcore.org/pipes/math32"
	"cogentcore.org/pipes/pipes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayouts(t *testing.T) {
	assert.Equal(t, 76, InstanceStride)
	assert.Equal(t, 64, int(unsafe.Sizeof(Camera{})))
	assert.Equal(t, 48, int(unsafe.Sizeof(Lights{})))
	assert.Equal(t, 32, int(unsafe.Offsetof(Lights{}.Ambient)))

	lays := VertexLayouts()
	require.Len(t, lays, 2)
	assert.Equal(t, uint64(VertexStride), lays[0].ArrayStride)
	assert.Equal(t, uint64(InstanceStride), lays[1].ArrayStride)
	inst := lays[1].Attributes
	require.Len(t, inst, 5)
	assert.Equal(t, uint64(unsafe.Offsetof(pipes.Instance{}.Model)), inst[1].Offset)
	for i, at := range inst {
		assert.Equal(t, uint32(2+i), at.ShaderLocation)
	}
}

func TestMeshBytes(t *testing.T) {
	b := MeshBytes([]float32{1, 2, 3, 4, 5, 6}, []float32{0, 1, 0, 0, 0, 1})
	assert.Len(t, b, 2*VertexStride)
	f := unsafe.Slice((*float32)(unsafe.Pointer(&b[0])), 12)
	assert.Equal(t, []float32{1, 2, 3, 0, 1, 0, 4, 5, 6, 0, 0, 1}, f)
}

func TestNewLights(t *testing.T) {
	lt := NewLights(pipes.DefaultLighting())
	for _, dl := range lt.Dirs {
		assert.InDelta(t, 1, dl.Pos.Length(), 1e-5)
	}
	assert.Equal(t, float32(0.2), lt.Ambient)
}

func TestNewCamera(t *testing.T) {
	view := math32.Identity4()
	cam := NewCamera(view, 45, image.Point{200, 100})
	// point in front of the camera lands at the center of clip space
	p := math32.Vec3(0, 0, -10).MulProjection(&cam.ViewProjection)
	assert.InDelta(t, 0, p.X, 1e-5)
	assert.InDelta(t, 0, p.Y, 1e-5)
	assert.Greater(t, p.Z, float32(0))
	assert.Less(t, p.Z, float32(1))
	// aspect ratio squeezes x
	q := math32.Vec3(1, 1, -10).MulProjection(&cam.ViewProjection)
	assert.InDelta(t, q.Y/2, q.X, 1e-5)
}

func TestGroupMesh(t *testing.T) {
	for g := range pipes.MeshGroupsN {
		sh := GroupMesh(g)
		require.NotNil(t, sh, g.String())
		ms := shape.Build(sh)
		assert.NotEmpty(t, ms.Index, g.String())
		for i := range ms.NVertex() {
			p := ms.Point(i)
			for _, v := range []float32{p.X, p.Y, p.Z} {
				assert.LessOrEqual(t, math32.Abs(v), float32(0.5+1e-5), g.String())
			}
		}
	}
	assert.Nil(t, GroupMesh(pipes.MeshGroupsN))

	// the bent mesh reaches the -Y and +Z faces, the straight one -Y and +Y
	reach := func(g pipes.MeshGroups, dir math32.Vector3) bool {
		ms := shape.Build(GroupMesh(g))
		for i := range ms.NVertex() {
			if ms.Point(i).Dot(dir) > 0.5-1e-5 {
				return true
			}
		}
		return false
	}
	assert.True(t, reach(pipes.Bent, math32.Vec3(0, -1, 0)))
	assert.True(t, reach(pipes.Bent, math32.Vec3(0, 0, 1)))
	assert.False(t, reach(pipes.Bent, math32.Vec3(0, 1, 0)))
	assert.True(t, reach(pipes.Straight, math32.Vec3(0, 1, 0)))
	assert.True(t, reach(pipes.Start, math32.Vec3(0, 1, 0)))
	assert.False(t, reach(pipes.Start, math32.Vec3(0, -1, 0)))
	assert.True(t, reach(pipes.End, math32.Vec3(0, -1, 0)))
	assert.False(t, reach(pipes.Single, math32.Vec3(0, 1, 0)))
}

func TestRenderer(t *testing.T) {
	t.Skip("Need software GPU on CI")
	gp, err := NewGPU(nil, nil)
	require.NoError(t, err)
	defer gp.Release()
	buf := NewBuffer("test", 0)
	assert.NoError(t, buf.Write(gp.Device, gp.Queue, make([]byte, 64)))
	assert.Equal(t, 64, buf.Size)
	assert.NoError(t, buf.Write(gp.Device, gp.Queue, make([]byte, 100)))
	assert.Equal(t, 128, buf.Size)
	buf.Release()
}
