// Copyright 2021 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuatAxisAngle(t *testing.T) {
	tests := []struct {
		axis  Vector3
		angle float32
		in    Vector3
		want  Vector3
	}{
		{Vec3(0, 1, 0), Pi / 2, Vec3(0, 0, 1), Vec3(1, 0, 0)},
		{Vec3(0, 1, 0), -Pi / 2, Vec3(0, 0, 1), Vec3(-1, 0, 0)},
		{Vec3(1, 0, 0), Pi / 2, Vec3(0, 1, 0), Vec3(0, 0, 1)},
		{Vec3(1, 0, 0), Pi, Vec3(0, 1, 0), Vec3(0, -1, 0)},
		{Vec3(0, 0, 1), -Pi / 2, Vec3(0, 1, 0), Vec3(1, 0, 0)},
		{Vec3(0, 0, 1), Pi / 2, Vec3(0, 1, 0), Vec3(-1, 0, 0)},
	}
	for _, tt := range tests {
		q := NewQuatAxisAngle(tt.axis, tt.angle)
		TolAssertEqualVector3(t, StandardTol, tt.want, tt.in.MulQuat(q))
		TolAssertEqualVector3(t, StandardTol, tt.want, tt.in.MulMatrix4AsVector(Matrix4FromQuat(q)))
	}
}

func TestQuatMul(t *testing.T) {
	// b is applied first, then a
	a := NewQuatAxisAngle(Vec3(0, 1, 0), -Pi/2)
	b := NewQuatAxisAngle(Vec3(1, 0, 0), Pi)
	v := Vec3(0, 0, 1)
	TolAssertEqualVector3(t, StandardTol, v.MulQuat(b).MulQuat(a), v.MulQuat(a.Mul(b)))
	TolAssertEqualVector3(t, StandardTol, Vec3(1, 0, 0), v.MulQuat(a.Mul(b)))

	id := NewQuatIdentity()
	assert.True(t, id.IsIdentity())
	assert.True(t, a.Mul(id).IsEqualTol(a, StandardTol))
	assert.True(t, a.Mul(a.Conjugate()).IsEqualTol(id, StandardTol))
}

func TestQuatNormalize(t *testing.T) {
	q := NewQuat(0, 2, 0, 2)
	q.Normalize()
	assert.InDelta(t, 1, q.Length(), 1e-6)
	z := Quat{}
	z.Normalize()
	assert.True(t, z.IsIdentity())
}

func TestQuatRotationMatrixRoundTrip(t *testing.T) {
	for _, q := range []Quat{
		NewQuatAxisAngle(Vec3(0, 1, 0), 0.3),
		NewQuatAxisAngle(Vec3(1, 0, 0), Pi),
		NewQuatAxisAngle(Vec3(0, 0, 1), -Pi/2),
		NewQuatAxisAngle(Vec3(1, 1, 1).Normal(), 2.5),
	} {
		var r Quat
		r.SetFromRotationMatrix(Matrix4FromQuat(q))
		assert.True(t, r.IsEqualTol(q, 1e-5), "%v != %v", r, q)
	}
}
