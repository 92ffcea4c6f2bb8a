// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipes

import (
	"fmt"

	"cogentcore.org/pipes/math32"
	"cogentcore.org/pipes/space"
)

// Segment meshes are modeled in a canonical frame: the entry face is
// at -Y, a straight segment exits at +Y and a bent segment exits at +Z.
// The rotations below carry that frame onto grid directions.

func rotX(angle float32) math32.Quat {
	return math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), angle)
}

func rotY(angle float32) math32.Quat {
	return math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), angle)
}

func rotZ(angle float32) math32.Quat {
	return math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), angle)
}

const (
	pi     = math32.Pi
	halfPi = math32.Pi / 2
)

// startRotations orients a cap so that its open face points along
// the direction.
var startRotations = [space.DirectionsN]math32.Quat{
	space.Up:    math32.NewQuatIdentity(),
	space.Down:  rotX(pi),
	space.East:  rotZ(-halfPi),
	space.West:  rotZ(halfPi),
	space.South: rotX(halfPi),
	space.North: rotX(-halfPi),
}

type joint struct {
	rot   math32.Quat
	group MeshGroups
}

// joints is indexed by [incoming][outgoing]. Reversals are left as
// the zero joint, which has an invalid (zero) rotation.
var joints = [space.DirectionsN][space.DirectionsN]joint{
	space.Up: {
		space.Up:    {math32.NewQuatIdentity(), Straight},
		space.East:  {rotY(halfPi), Bent},
		space.West:  {rotY(-halfPi), Bent},
		space.South: {math32.NewQuatIdentity(), Bent},
		space.North: {rotY(pi), Bent},
	},
	space.Down: {
		space.Down:  {rotX(pi), Straight},
		space.East:  {rotY(-halfPi).Mul(rotX(pi)), Bent},
		space.West:  {rotY(halfPi).Mul(rotX(pi)), Bent},
		space.South: {rotY(pi).Mul(rotX(pi)), Bent},
		space.North: {rotX(pi), Bent},
	},
	space.East: {
		space.East:  {rotZ(-halfPi), Straight},
		space.Up:    {rotX(-halfPi).Mul(rotZ(-halfPi)), Bent},
		space.Down:  {rotX(halfPi).Mul(rotZ(-halfPi)), Bent},
		space.South: {rotZ(-halfPi), Bent},
		space.North: {rotX(pi).Mul(rotZ(-halfPi)), Bent},
	},
	space.West: {
		space.West:  {rotZ(halfPi), Straight},
		space.Up:    {rotX(-halfPi).Mul(rotZ(halfPi)), Bent},
		space.Down:  {rotX(halfPi).Mul(rotZ(halfPi)), Bent},
		space.South: {rotZ(halfPi), Bent},
		space.North: {rotX(pi).Mul(rotZ(halfPi)), Bent},
	},
	space.South: {
		space.South: {rotX(halfPi), Straight},
		space.Up:    {rotZ(pi).Mul(rotX(halfPi)), Bent},
		space.Down:  {rotX(halfPi), Bent},
		space.East:  {rotZ(halfPi).Mul(rotX(halfPi)), Bent},
		space.West:  {rotZ(-halfPi).Mul(rotX(halfPi)), Bent},
	},
	space.North: {
		space.North: {rotX(-halfPi), Straight},
		space.Up:    {rotX(-halfPi), Bent},
		space.Down:  {rotZ(pi).Mul(rotX(-halfPi)), Bent},
		space.East:  {rotZ(-halfPi).Mul(rotX(-halfPi)), Bent},
		space.West:  {rotZ(halfPi).Mul(rotX(-halfPi)), Bent},
	},
}

// StartRotation returns the rotation for a cap whose open face points
// along d. It panics if d is not one of the six directions.
func StartRotation(d space.Direction) math32.Quat {
	if !d.IsValid() {
		panic(fmt.Sprintf("pipes.StartRotation: invalid direction %v", d))
	}
	return startRotations[d]
}

// JointRotation returns the rotation and mesh group for the segment
// joining a pipe arriving along in to one leaving along out.
// Continuing straight gives [Straight], a right-angle turn gives
// [Bent]. It panics if out reverses in, which growth never requests.
func JointRotation(in, out space.Direction) (math32.Quat, MeshGroups) {
	if !in.IsValid() || !out.IsValid() {
		panic(fmt.Sprintf("pipes.JointRotation: invalid directions %v -> %v", in, out))
	}
	if out == in.Opposite() {
		panic(fmt.Sprintf("pipes.JointRotation: pipe cannot reverse from %v to %v", in, out))
	}
	j := joints[in][out]
	return j.rot, j.group
}

// LocationMatrix returns the translation that places a cell of a grid
// of the given size in world space, centered on the origin with unit
// spacing.
func LocationMatrix(c space.Cell, size math32.Vector3i) *math32.Matrix4 {
	center := size.Vector3().SubScalar(1).MulScalar(0.5)
	return math32.Matrix4Translation(c.Vector3().Sub(center))
}

// SegmentModel returns the model transform of a segment at cell c
// rotated by rot.
func SegmentModel(c space.Cell, size math32.Vector3i, rot math32.Quat) math32.Matrix4 {
	return *LocationMatrix(c, size).Mul(math32.Matrix4FromQuat(rot))
}
