// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipes

import (
	"testing"

	"cogentcore.org/pipes/base/randx"
	"cogentcore.org/pipes/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHSBToRGB(t *testing.T) {
	assertVector3(t, math32.Vec3(1, 0, 0), HSBToRGB(0, 1, 1))
	assertVector3(t, math32.Vec3(0, 1, 0), HSBToRGB(1.0/3, 1, 1))
	assertVector3(t, math32.Vec3(0, 0, 1), HSBToRGB(2.0/3, 1, 1))
	assertVector3(t, math32.Vec3(1, 1, 0), HSBToRGB(1.0/6, 1, 1))
	assertVector3(t, math32.Vector3Scalar(0.5), HSBToRGB(0.3, 0, 0.5))
	assertVector3(t, HSBToRGB(0.25, 0.8, 1), HSBToRGB(1.25, 0.8, 1))
}

func TestRandomColor(t *testing.T) {
	rnd := randx.NewSysRand(7)
	for range 100 {
		for _, mode := range []ColorModes{ColorRGB, ColorHSB} {
			c := RandomColor(rnd, mode)
			for _, v := range []float32{c.X, c.Y, c.Z} {
				assert.GreaterOrEqual(t, v, float32(0))
				assert.LessOrEqual(t, v, float32(1))
			}
			if mode == ColorHSB {
				// full brightness means the largest channel is 1
				assert.InDelta(t, 1, math32.Max(c.X, math32.Max(c.Y, c.Z)), tol)
			}
		}
	}
}

func TestColorModesSetString(t *testing.T) {
	var cm ColorModes
	require.NoError(t, cm.SetString("HSB"))
	assert.Equal(t, ColorHSB, cm)
	assert.Equal(t, "hsb", cm.String())
	require.NoError(t, cm.SetString("rgb"))
	assert.Equal(t, ColorRGB, cm)
	assert.Error(t, cm.SetString("cmyk"))
}
