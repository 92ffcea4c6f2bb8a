// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipes grows randomly wandering pipes through a bounded
// 3D grid, one segment per tick, and reports every segment it places
// or removes to an [InstanceGroups] for drawing.
package pipes

import (
	"fmt"
	"log/slog"

	"cogentcore.org/pipes/base/errors"
	"cogentcore.org/pipes/base/randx"
	"cogentcore.org/pipes/math32"
	"cogentcore.org/pipes/space"
)

// DefaultStartAttempts is the default number of random cells tried
// when starting a pipe before the grid is cleared.
const DefaultStartAttempts = 3

// Segment is the current growing tip of a pipe.
type Segment struct {

	// Direction the pipe was moving when it entered Location.
	// It is [space.Up] for a freshly started pipe.
	Direction space.Direction

	// Location is the cell the tip occupies.
	Location space.Cell

	// Group is the mesh group holding the tip's instance,
	// [Single] for a fresh pipe and [End] after it has grown.
	Group MeshGroups
}

func (sg Segment) String() string {
	return fmt.Sprintf("%v at %v (%v)", sg.Direction, sg.Location, sg.Group)
}

// Stats counts growth events since the [Pipes] was created.
type Stats struct {

	// Pipes is the number of pipes started.
	Pipes int

	// Segments is the number of segments grown onto existing pipes.
	Segments int

	// BoxedIn is the number of pipes that ended because they had no free neighbor.
	BoxedIn int

	// Resets is the number of times a start failed and the grid was cleared.
	Resets int

	// Clears is the number of explicit [Pipes.ClearAll] calls.
	Clears int
}

// Pipes is the growth state machine. It owns the occupancy grid and
// the current growing segment, and mirrors every change into Groups.
// A Pipes is not safe for concurrent use.
type Pipes struct {

	// Grid records which cells are occupied by any pipe.
	Grid *space.Grid

	// Groups receives the instance changes for every growth step.
	Groups InstanceGroups

	// Rand is the random source for start cells, directions and colors.
	Rand randx.Rand

	// StartAttempts is the number of random cells tried when starting
	// a pipe before the grid is cleared.
	StartAttempts int

	// ExcludeReverse removes the direction opposite the current one
	// from the candidates. The occupancy of the previous cell already
	// excludes it, so this only matters if occupancy were bypassed.
	ExcludeReverse bool

	// ColorMode determines how each new pipe's color is drawn.
	ColorMode ColorModes

	// Color is the color of the current pipe.
	Color math32.Vector3

	cursor  Segment
	growing bool
	stats   Stats
}

// New returns a new idle [Pipes] with an empty grid of the given size.
func New(size math32.Vector3i, groups InstanceGroups, rnd randx.Rand) *Pipes {
	return &Pipes{
		Grid:           space.NewGrid(size),
		Groups:         groups,
		Rand:           rnd,
		StartAttempts:  DefaultStartAttempts,
		ExcludeReverse: true,
	}
}

// Cursor returns the current growing segment, and false if
// no pipe has been started since creation or the last clear.
func (p *Pipes) Cursor() (Segment, bool) {
	return p.cursor, p.growing
}

// Stats returns the growth counters.
func (p *Pipes) Stats() Stats {
	return p.stats
}

// Grow performs one growth step: it starts a new pipe when idle and
// extends the current one otherwise.
func (p *Pipes) Grow() {
	if !p.growing {
		p.NewPipe()
		return
	}
	p.GrowExisting()
}

// ClearAll empties every mesh group and the grid, and returns to idle.
func (p *Pipes) ClearAll() {
	ClearAllGroups(p.Groups)
	p.Grid.Clear()
	p.growing = false
	p.stats.Clears++
	slog.Debug("pipes: cleared")
}

func (p *Pipes) randomCell() space.Cell {
	return p.Grid.Cell(p.Rand.Intn(p.Grid.Len()))
}

// NewPipe starts a new pipe at a random free cell. After StartAttempts
// occupied picks it assumes the grid is too full, clears everything,
// and places the pipe in the now empty grid.
func (p *Pipes) NewPipe() {
	attempts := 0
	var loc space.Cell
	for {
		if attempts >= p.StartAttempts {
			ClearAllGroups(p.Groups)
			p.Grid.Clear()
			p.stats.Resets++
			slog.Debug("pipes: grid too full to start a pipe, reset", "attempts", attempts)
			loc = p.randomCell()
			if p.Grid.Get(loc) {
				panic(fmt.Sprintf("pipes.NewPipe: cell %v occupied after clearing the grid", loc))
			}
			break
		}
		loc = p.randomCell()
		if !p.Grid.Get(loc) {
			break
		}
		attempts++
	}

	p.Color = RandomColor(p.Rand, p.ColorMode)
	errors.Must(p.Groups.AddInstances(Single, Instance{
		Color: p.Color,
		Model: *LocationMatrix(loc, p.Grid.Size),
	}))
	p.Grid.Set(loc)
	p.cursor = Segment{Direction: space.Up, Location: loc, Group: Single}
	p.growing = true
	p.stats.Pipes++
	slog.Debug("pipes: new pipe", "at", loc, "color", p.Color)
}

// GrowExisting extends the current pipe by one cell in a random free
// direction, converting the previous tip into a start cap or a joint
// and capping the new tip. A pipe with no free neighbor is abandoned
// and a new one is started, without clearing the grid.
func (p *Pipes) GrowExisting() {
	prev := p.cursor
	exclude := space.DirectionsN
	if p.ExcludeReverse && prev.Group != Single {
		exclude = prev.Direction.Opposite()
	}
	dirs := p.Grid.FreeDirections(prev.Location, exclude)
	if len(dirs) == 0 {
		p.stats.BoxedIn++
		slog.Debug("pipes: boxed in", "at", prev.Location)
		p.NewPipe()
		return
	}
	dir := dirs[p.Rand.Intn(len(dirs))]
	next := dir.Offset(prev.Location)
	size := p.Grid.Size

	switch prev.Group {
	case Single:
		errors.Must(p.Groups.RemoveInstances(Single, 1))
		errors.Must(p.Groups.AddInstances(Start, Instance{
			Color: p.Color,
			Model: SegmentModel(prev.Location, size, StartRotation(dir)),
		}))
	case End:
		rot, group := JointRotation(prev.Direction, dir)
		errors.Must(p.Groups.RemoveInstances(End, 1))
		errors.Must(p.Groups.AddInstances(group, Instance{
			Color: p.Color,
			Model: SegmentModel(prev.Location, size, rot),
		}))
	default:
		panic(fmt.Sprintf("pipes.GrowExisting: unexpected cursor group %v", prev.Group))
	}
	errors.Must(p.Groups.AddInstances(End, Instance{
		Color: p.Color,
		Model: SegmentModel(next, size, StartRotation(dir)),
	}))
	p.Grid.Set(next)
	p.cursor = Segment{Direction: dir, Location: next, Group: End}
	p.stats.Segments++
}
