// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/pipes/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Buffer is a device buffer that is written from the host with
// WriteBuffer and grows as needed.
type Buffer struct {

	// Name is the buffer label.
	Name string

	// Usage flags; CopyDst is always added.
	Usage wgpu.BufferUsage

	// Size is the allocated size in bytes.
	Size int

	buffer *wgpu.Buffer
}

// NewBuffer returns a new [Buffer]. Nothing is allocated until
// the first write.
func NewBuffer(name string, usage wgpu.BufferUsage) *Buffer {
	return &Buffer{Name: name, Usage: usage | wgpu.BufferUsageCopyDst}
}

// GPU returns the device buffer, nil until written.
func (bf *Buffer) GPU() *wgpu.Buffer {
	return bf.buffer
}

// Write uploads data, allocating a larger buffer first if needed.
// Empty data is a no-op.
func (bf *Buffer) Write(dev *wgpu.Device, queue *wgpu.Queue, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if bf.buffer == nil || len(data) > bf.Size {
		size := max(len(data), 2*bf.Size)
		size = (size + 3) &^ 3 // WriteBuffer needs 4 byte multiples
		bf.Release()
		buf, err := dev.CreateBuffer(&wgpu.BufferDescriptor{
			Label: bf.Name,
			Size:  uint64(size),
			Usage: bf.Usage,
		})
		if errors.Log(err) != nil {
			return err
		}
		bf.buffer = buf
		bf.Size = size
	}
	return errors.Log(queue.WriteBuffer(bf.buffer, 0, data))
}

// Release frees the device buffer.
func (bf *Buffer) Release() {
	if bf.buffer == nil {
		return
	}
	bf.buffer.Release()
	bf.buffer = nil
	bf.Size = 0
}
