// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu draws the pipe instance groups with WebGPU, one
// instanced draw call per mesh group, into a glfw window.
package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// GPU holds the WebGPU instance, adapter, device and queue.
type GPU struct {
	Instance *wgpu.Instance
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue
}

// NewGPU creates a device compatible with the given surface,
// which may be nil for offscreen use.
func NewGPU(inst *wgpu.Instance, surface *wgpu.Surface) (*GPU, error) {
	if inst == nil {
		inst = wgpu.CreateInstance(nil)
	}
	gp := &GPU{Instance: inst}
	adapter, err := inst.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		gp.Release()
		return nil, fmt.Errorf("gpu: request adapter: %w", err)
	}
	gp.Adapter = adapter
	device, err := adapter.RequestDevice(nil)
	if err != nil {
		gp.Release()
		return nil, fmt.Errorf("gpu: request device: %w", err)
	}
	gp.Device = device
	gp.Queue = device.GetQueue()
	return gp, nil
}

// Release releases all resources in reverse order of creation.
func (gp *GPU) Release() {
	if gp.Queue != nil {
		gp.Queue.Release()
		gp.Queue = nil
	}
	if gp.Device != nil {
		gp.Device.Release()
		gp.Device = nil
	}
	if gp.Adapter != nil {
		gp.Adapter.Release()
		gp.Adapter = nil
	}
	if gp.Instance != nil {
		gp.Instance.Release()
		gp.Instance = nil
	}
}
