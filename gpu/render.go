// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	_ "embed"
	"image"
	"image/color"

	"cogentcore.org/pipes/base/errors"
	"cogentcore.org/pipes/gpu/shape"
	"cogentcore.org/pipes/math32"
	"cogentcore.org/pipes/pipes"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed shaders/pipes.wgsl
var pipesShader string

// DefaultFOV is the default vertical field of view in degrees.
const DefaultFOV = 45

// mesh is the device copy of one group's mesh.
type mesh struct {
	vertex, index *Buffer
	nIndex        uint32
}

// instanceBuffer is the device copy of one instance group.
type instanceBuffer struct {
	*Buffer
	n       int
	version uint64
	synced  bool
}

// Renderer draws [pipes.Instances] to a surface, one instanced
// draw per mesh group. It implements [pipes.Renderer].
type Renderer struct {

	// GPU is the device used for drawing.
	GPU *GPU

	// Surface is the render target.
	Surface *wgpu.Surface

	// Instances are the groups to draw.
	Instances *pipes.Instances

	// FOV is the vertical field of view in degrees.
	FOV float32

	// ClearColor is the background color.
	ClearColor color.RGBA

	// Lights are the scene lights, uploaded once at creation.
	Lights Lights

	size      image.Point
	format    wgpu.TextureFormat
	depth     Texture
	pipeline  *wgpu.RenderPipeline
	bindGroup *wgpu.BindGroup
	camera    *Buffer
	lights    *Buffer
	view      math32.Matrix4
	meshes    [pipes.MeshGroupsN]mesh
	instances [pipes.MeshGroupsN]instanceBuffer
	scratch   []pipes.Instance
}

// NewRenderer configures the surface at the given size and builds the
// pipeline, meshes and uniforms for drawing is.
func NewRenderer(gp *GPU, surface *wgpu.Surface, size image.Point, is *pipes.Instances) (*Renderer, error) {
	rd := &Renderer{
		GPU:        gp,
		Surface:    surface,
		Instances:  is,
		FOV:        DefaultFOV,
		ClearColor: color.RGBA{A: 255},
		Lights:     NewLights(pipes.DefaultLighting()),
		camera:     NewBuffer("camera", wgpu.BufferUsageUniform),
		lights:     NewBuffer("lights", wgpu.BufferUsageUniform),
	}
	rd.depth.Name = "depth"
	rd.view.SetIdentity()
	caps := surface.GetCapabilities(gp.Adapter)
	if len(caps.Formats) == 0 {
		return nil, errors.New("gpu: surface has no formats")
	}
	rd.format = caps.Formats[0]
	rd.Resize(size)
	if err := rd.configPipeline(); err != nil {
		rd.Release()
		return nil, err
	}
	for g := range pipes.MeshGroupsN {
		if err := rd.configMesh(g); err != nil {
			rd.Release()
			return nil, err
		}
		rd.instances[g].Buffer = NewBuffer(g.String(), wgpu.BufferUsageVertex)
	}
	return rd, nil
}

// configPipeline builds the render pipeline and its uniform bind group.
func (rd *Renderer) configPipeline() error {
	dev := rd.GPU.Device
	module, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "pipes",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: pipesShader},
	})
	if errors.Log(err) != nil {
		return err
	}
	defer module.Release()
	rd.pipeline, err = dev.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "pipes",
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		},
		Multisample: wgpu.MultisampleState{Count: 1, Mask: 0xFFFFFFFF},
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers:    VertexLayouts(),
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    rd.format,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            DepthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront:      wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
			StencilBack:       wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
		},
	})
	if errors.Log(err) != nil {
		return err
	}
	if err := rd.writeCamera(); err != nil {
		return err
	}
	if err := rd.lights.Write(dev, rd.GPU.Queue, wgpu.ToBytes([]Lights{rd.Lights})); err != nil {
		return err
	}
	layout := rd.pipeline.GetBindGroupLayout(0)
	defer layout.Release()
	rd.bindGroup, err = dev.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "uniforms",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: rd.camera.GPU(), Offset: 0, Size: wgpu.WholeSize},
			{Binding: 1, Buffer: rd.lights.GPU(), Offset: 0, Size: wgpu.WholeSize},
		},
	})
	return errors.Log(err)
}

// configMesh uploads the mesh of the given group.
func (rd *Renderer) configMesh(group pipes.MeshGroups) error {
	ms := shape.Build(GroupMesh(group))
	m := &rd.meshes[group]
	m.vertex = NewBuffer(group.String()+" vertex", wgpu.BufferUsageVertex)
	m.index = NewBuffer(group.String()+" index", wgpu.BufferUsageIndex)
	m.nIndex = uint32(len(ms.Index))
	if err := m.vertex.Write(rd.GPU.Device, rd.GPU.Queue, MeshBytes(ms.Vertex, ms.Normal)); err != nil {
		return err
	}
	return m.index.Write(rd.GPU.Device, rd.GPU.Queue, wgpu.ToBytes(ms.Index))
}

// SetCamera sets the view matrix for the next frame.
func (rd *Renderer) SetCamera(eye math32.Vector3, view *math32.Matrix4) {
	rd.view = *view
}

// Resize reconfigures the surface and depth buffer for a new size.
func (rd *Renderer) Resize(size image.Point) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	rd.size = size
	caps := rd.Surface.GetCapabilities(rd.GPU.Adapter)
	alpha := wgpu.CompositeAlphaModeAuto
	if len(caps.AlphaModes) > 0 {
		alpha = caps.AlphaModes[0]
	}
	rd.Surface.Configure(rd.GPU.Adapter, rd.GPU.Device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      rd.format,
		Width:       uint32(size.X),
		Height:      uint32(size.Y),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   alpha,
	})
	errors.Log(rd.depth.ConfigDepth(rd.GPU.Device, size))
}

func (rd *Renderer) writeCamera() error {
	cam := NewCamera(&rd.view, rd.FOV, rd.size)
	return rd.camera.Write(rd.GPU.Device, rd.GPU.Queue, wgpu.ToBytes([]Camera{cam}))
}

// syncInstances uploads the groups whose version changed since the
// last frame.
func (rd *Renderer) syncInstances() error {
	for g := range pipes.MeshGroupsN {
		ib := &rd.instances[g]
		if ib.synced && rd.Instances.Version(g) == ib.version {
			continue
		}
		var ver uint64
		rd.scratch, ver = rd.Instances.Snapshot(g, rd.scratch[:0])
		if err := ib.Write(rd.GPU.Device, rd.GPU.Queue, wgpu.ToBytes(rd.scratch)); err != nil {
			return err
		}
		ib.n = len(rd.scratch)
		ib.version = ver
		ib.synced = true
	}
	return nil
}

// Render draws one frame and presents it.
func (rd *Renderer) Render() error {
	if err := rd.syncInstances(); err != nil {
		return err
	}
	if err := rd.writeCamera(); err != nil {
		return err
	}
	tex, err := rd.Surface.GetCurrentTexture()
	if errors.Log(err) != nil {
		return err
	}
	view, err := tex.CreateView(nil)
	if errors.Log(err) != nil {
		return err
	}
	defer view.Release()

	cmd, err := rd.GPU.Device.CreateCommandEncoder(nil)
	if errors.Log(err) != nil {
		return err
	}
	defer cmd.Release()
	clr := rd.ClearColor
	rp := cmd.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    view,
			LoadOp:  wgpu.LoadOpClear,
			StoreOp: wgpu.StoreOpStore,
			ClearValue: wgpu.Color{
				R: float64(clr.R) / 255, G: float64(clr.G) / 255,
				B: float64(clr.B) / 255, A: float64(clr.A) / 255,
			},
		}},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            rd.depth.View(),
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1,
		},
	})
	rp.SetPipeline(rd.pipeline)
	rp.SetBindGroup(0, rd.bindGroup, nil)
	for g := range pipes.MeshGroupsN {
		ib := &rd.instances[g]
		if ib.n == 0 {
			continue
		}
		m := &rd.meshes[g]
		rp.SetVertexBuffer(0, m.vertex.GPU(), 0, wgpu.WholeSize)
		rp.SetVertexBuffer(1, ib.GPU(), 0, wgpu.WholeSize)
		rp.SetIndexBuffer(m.index.GPU(), wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
		rp.DrawIndexed(m.nIndex, uint32(ib.n), 0, 0, 0)
	}
	rp.End()
	rp.Release()

	buf, err := cmd.Finish(nil)
	if errors.Log(err) != nil {
		return err
	}
	defer buf.Release()
	rd.GPU.Queue.Submit(buf)
	rd.Surface.Present()
	return nil
}

// Release frees all device resources owned by the renderer.
func (rd *Renderer) Release() {
	for g := range rd.meshes {
		m := &rd.meshes[g]
		if m.vertex != nil {
			m.vertex.Release()
			m.index.Release()
		}
		if rd.instances[g].Buffer != nil {
			rd.instances[g].Release()
		}
	}
	if rd.bindGroup != nil {
		rd.bindGroup.Release()
		rd.bindGroup = nil
	}
	if rd.pipeline != nil {
		rd.pipeline.Release()
		rd.pipeline = nil
	}
	rd.camera.Release()
	rd.lights.Release()
	rd.depth.Release()
}
