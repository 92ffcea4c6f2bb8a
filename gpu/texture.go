// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"cogentcore.org/pipes/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// DepthFormat is the format of the depth buffer.
const DepthFormat = wgpu.TextureFormatDepth32Float

// Texture represents a WebGPU Texture with an associated TextureView.
type Texture struct {

	// Name of the texture, used as its label.
	Name string

	// Format of the texture.
	Format wgpu.TextureFormat

	// Size of the texture.
	Size image.Point

	// WebGPU texture handle, in device memory
	texture *wgpu.Texture

	// WebGPU texture view
	view *wgpu.TextureView
}

// View returns the texture view, nil until configured.
func (tx *Texture) View() *wgpu.TextureView {
	return tx.view
}

// ConfigDepth configures this texture as a depth texture of the
// given size. If the current texture has the same size, it is kept.
func (tx *Texture) ConfigDepth(dev *wgpu.Device, size image.Point) error {
	if tx.texture != nil && tx.Size == size && tx.Format == DepthFormat {
		return nil
	}
	tx.Format = DepthFormat
	tx.Size = size
	return tx.CreateTexture(dev, wgpu.TextureUsageRenderAttachment)
}

// CreateTexture creates the texture based on current settings,
// and a view of that texture. Calls release first.
func (tx *Texture) CreateTexture(dev *wgpu.Device, usage wgpu.TextureUsage) error {
	tx.Release()
	t, err := dev.CreateTexture(&wgpu.TextureDescriptor{
		Label: tx.Name,
		Size: wgpu.Extent3D{
			Width:              uint32(tx.Size.X),
			Height:             uint32(tx.Size.Y),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        tx.Format,
		Usage:         usage,
	})
	if errors.Log(err) != nil {
		return err
	}
	tx.texture = t
	vw, err := t.CreateView(nil)
	if errors.Log(err) != nil {
		return err
	}
	tx.view = vw
	return nil
}

// Release destroys any existing view and texture.
func (tx *Texture) Release() {
	if tx.view != nil {
		tx.view.Release()
		tx.view = nil
	}
	if tx.texture != nil {
		tx.texture.Release()
		tx.texture = nil
	}
}
