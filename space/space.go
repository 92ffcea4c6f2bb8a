// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package space provides the bounded 3D cell volume that pipes grow
// through: an occupancy [Grid] and the six axis-aligned [Direction]s
// for moving between cells.
package space

import (
	"fmt"

	"cogentcore.org/pipes/math32"
	"github.com/bits-and-blooms/bitset"
)

// Cell is one discrete position in a [Grid], with each
// component in [0, dimension) on its axis.
type Cell = math32.Vector3i

// Grid is a dense occupancy bitset over a fixed-size 3D volume,
// with one bit per cell, packed into 64-bit words. Cell (x, y, z)
// maps to bit x + y*W + z*W*H. It is not safe for concurrent use.
type Grid struct {
	// Size is the number of cells along each axis (W, H, D).
	Size math32.Vector3i

	bits *bitset.BitSet
}

// NewGrid returns a new empty [Grid] with the given dimensions,
// which must all be positive.
func NewGrid(size math32.Vector3i) *Grid {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		panic(fmt.Sprintf("space.NewGrid: invalid size %v", size))
	}
	return &Grid{Size: size, bits: bitset.New(uint(size.Volume()))}
}

// Len returns the total number of cells in the grid.
func (g *Grid) Len() int {
	return g.Size.Volume()
}

// Contains returns whether the given cell is within the grid bounds.
func (g *Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.Z >= 0 && c.X < g.Size.X && c.Y < g.Size.Y && c.Z < g.Size.Z
}

// Index returns the linear bit index for the given cell.
// It panics if the cell is out of bounds.
func (g *Grid) Index(c Cell) uint {
	if !g.Contains(c) {
		panic(fmt.Sprintf("space.Grid: cell %v out of bounds %v", c, g.Size))
	}
	return uint(c.X) + uint(c.Y)*uint(g.Size.X) + uint(c.Z)*uint(g.Size.X)*uint(g.Size.Y)
}

// Cell returns the cell for the given linear index.
func (g *Grid) Cell(idx int) Cell {
	w, h := int(g.Size.X), int(g.Size.Y)
	return math32.Vec3i(int32(idx%w), int32((idx/w)%h), int32(idx/(w*h)))
}

// Set marks the given cell as occupied.
// It panics if the cell is out of bounds.
func (g *Grid) Set(c Cell) {
	g.bits.Set(g.Index(c))
}

// Get returns whether the given cell is occupied.
// It panics if the cell is out of bounds.
func (g *Grid) Get(c Cell) bool {
	return g.bits.Test(g.Index(c))
}

// Clear marks all cells as unoccupied.
func (g *Grid) Clear() {
	g.bits.ClearAll()
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	return int(g.bits.Count())
}

// Full returns whether every cell is occupied.
func (g *Grid) Full() bool {
	return g.Count() == g.Len()
}

// Words returns the underlying packed words, for inspection.
// The returned slice must not be modified.
func (g *Grid) Words() []uint64 {
	return g.bits.Words()
}
