// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/pipes/gpu/shape"
	"cogentcore.org/pipes/math32"
	"cogentcore.org/pipes/pipes"
)

// Mesh dimensions, in cell units.
const (
	TubeRadius = 0.2
	BallRadius = 0.25
	Segments   = 16
)

// GroupMesh returns the shape of the given group in the canonical
// frame: the entry face at -Y, a straight exit at +Y and a bent exit
// at +Z, all within the unit cell centered on the origin.
func GroupMesh(group pipes.MeshGroups) shape.Shape {
	ball := func() shape.Shape { return shape.NewSphere(BallRadius, Segments, Segments/2) }
	tube := func(bottom, top float32) *shape.Cylinder {
		return shape.NewCylinder(TubeRadius, bottom, top, Segments)
	}
	switch group {
	case pipes.Single:
		return ball()
	case pipes.Start:
		return shape.NewGroup(ball(), tube(0, 0.5))
	case pipes.Straight:
		return tube(-0.5, 0.5)
	case pipes.Bent:
		out := tube(0, 0.5)
		out.Rot = math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), math32.Pi/2)
		return shape.NewGroup(tube(-0.5, 0), ball(), out)
	case pipes.End:
		return shape.NewGroup(tube(-0.5, 0), ball())
	}
	return nil
}
