// Copyright 2021 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const StandardTol = float32(1.0e-5)

func TolAssertEqualVector3(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	assert.InDelta(t, vt.X, va.X, float64(tol), "X: %v != %v", vt, va)
	assert.InDelta(t, vt.Y, va.Y, float64(tol), "Y: %v != %v", vt, va)
	assert.InDelta(t, vt.Z, va.Z, float64(tol), "Z: %v != %v", vt, va)
}

func TestMatrix4Translation(t *testing.T) {
	m := Matrix4Translation(Vec3(1, 2, 3))
	assert.Equal(t, Vec3(1, 2, 3), Vec3(0, 0, 0).MulMatrix4AsPoint(m))
	assert.Equal(t, Vec3(2, 2, 3), Vec3(1, 0, 0).MulMatrix4AsPoint(m))
	assert.Equal(t, Vec3(1, 0, 0), Vec3(1, 0, 0).MulMatrix4AsVector(m))
}

func TestMatrix4Mul(t *testing.T) {
	// translate after rotating: multiplication order is the reverse of the
	// logical order
	rot := Matrix4FromQuat(NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(90)))
	tr := Matrix4Translation(Vec3(1, 1, 0))
	m := tr.Mul(rot)
	TolAssertEqualVector3(t, StandardTol, Vec3(1, 2, 0), Vec3(1, 0, 0).MulMatrix4AsPoint(m))

	id := Identity4()
	assert.Equal(t, *m, *m.Mul(id))
	assert.Equal(t, *m, *id.Mul(m))
}

func TestMatrix4Inverse(t *testing.T) {
	m := &Matrix4{}
	m.SetTransform(Vec3(3, -2, 5), NewQuatAxisAngle(Vec3(1, 1, 0).Normal(), 0.7), Vec3(2, 2, 2))
	inv, err := m.Inverse()
	require.NoError(t, err)
	p := Vec3(0.5, 4, -1)
	TolAssertEqualVector3(t, 1e-4, p, p.MulMatrix4AsPoint(m).MulMatrix4AsPoint(inv))
	assert.InDelta(t, 8, m.Determinant(), 1e-4)

	zero := &Matrix4{}
	inv, err = zero.Inverse()
	assert.Error(t, err)
	assert.Equal(t, *Identity4(), *inv)
}

func TestNewLookAt(t *testing.T) {
	eye := Vec3(0, 0, 5)
	m := NewLookAt(eye, Vec3(0, 0, 0), Vec3(0, 1, 0))
	// the z axis points from the target to the eye
	TolAssertEqualVector3(t, StandardTol, Vec3(0, 0, 1), Vec3(0, 0, 1).MulMatrix4AsVector(m))
	TolAssertEqualVector3(t, StandardTol, Vec3(1, 0, 0), Vec3(1, 0, 0).MulMatrix4AsVector(m))

	var q Quat
	q.SetFromRotationMatrix(m)
	assert.True(t, q.IsEqualTol(NewQuatIdentity(), StandardTol))
}

func TestSetPerspective(t *testing.T) {
	var m Matrix4
	m.SetPerspective(90, 1, 1, 100)
	near := Vec3(0, 0, -1).MulMatrix4AsPoint(&m)
	far := Vec3(0, 0, -100).MulMatrix4AsPoint(&m)
	// w = -z for a right-handed perspective
	assert.InDelta(t, 0, near.Z/1, 1e-5)
	assert.InDelta(t, 1, far.Z/100, 1e-5)
	assert.InDelta(t, 1, m[0], 1e-5)
	assert.InDelta(t, 1, m[5], 1e-5)
}
