// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"fmt"

	"cogentcore.org/pipes/math32"
)

// Direction is one of the six axis-aligned moves between cells.
// Up and Down move along Y, East and West along X, and
// South and North along Z.
type Direction int32

const (
	// Up increases Y.
	Up Direction = iota

	// Down decreases Y.
	Down

	// East increases X.
	East

	// West decreases X.
	West

	// South increases Z.
	South

	// North decreases Z.
	North

	// DirectionsN is the number of directions.
	DirectionsN
)

var directionNames = [DirectionsN]string{"Up", "Down", "East", "West", "South", "North"}

// unit offsets, indexed by Direction
var directionOffsets = [DirectionsN]math32.Vector3i{
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: -1, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: -1, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: 1},
	{X: 0, Y: 0, Z: -1},
}

// Directions returns all the directions, in their fixed order.
func Directions() [DirectionsN]Direction {
	return [DirectionsN]Direction{Up, Down, East, West, South, North}
}

func (d Direction) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Direction(%d)", int32(d))
	}
	return directionNames[d]
}

// IsValid returns whether this is one of the six directions.
func (d Direction) IsValid() bool {
	return d >= Up && d < DirectionsN
}

// Axis returns the axis that this direction moves along.
func (d Direction) Axis() math32.Dims {
	switch d {
	case Up, Down:
		return math32.Y
	case East, West:
		return math32.X
	case South, North:
		return math32.Z
	}
	panic(fmt.Sprintf("space.Direction.Axis: invalid direction %d", int32(d)))
}

// Opposite returns the direction along the same axis with the opposite sign.
func (d Direction) Opposite() Direction {
	return d ^ 1
}

// Vector returns the unit offset of this direction.
func (d Direction) Vector() math32.Vector3i {
	return directionOffsets[d]
}

// Offset returns the given cell moved one unit along this direction.
// It does not check the grid bounds: see [Grid.IsOffsetLegal].
func (d Direction) Offset(c Cell) Cell {
	return c.Add(directionOffsets[d])
}

// IsOffsetLegal returns whether moving the given cell one unit along the
// given direction stays within the grid bounds.
func (g *Grid) IsOffsetLegal(d Direction, c Cell) bool {
	switch d {
	case Up:
		return c.Y < g.Size.Y-1
	case Down:
		return c.Y > 0
	case East:
		return c.X < g.Size.X-1
	case West:
		return c.X > 0
	case South:
		return c.Z < g.Size.Z-1
	case North:
		return c.Z > 0
	}
	panic(fmt.Sprintf("space.Grid.IsOffsetLegal: invalid direction %d", int32(d)))
}

// FreeDirections returns the directions in which the given cell can move
// to an unoccupied in-bounds cell, in the fixed direction order, skipping
// the given excluded direction. Pass [DirectionsN] to exclude nothing.
func (g *Grid) FreeDirections(c Cell, exclude Direction) []Direction {
	dirs := make([]Direction, 0, DirectionsN)
	for _, d := range Directions() {
		if d == exclude {
			continue
		}
		if g.IsOffsetLegal(d, c) && !g.Get(d.Offset(c)) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
