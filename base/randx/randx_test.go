// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeeded(t *testing.T) {
	a := NewSysRand(42)
	b := NewSysRand(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
		assert.Equal(t, a.Float32(), b.Float32())
	}
	a.Seed(7)
	b.Seed(7)
	assert.Equal(t, a.Perm(10), b.Perm(10))
}

func TestRanges(t *testing.T) {
	for _, rnd := range []Rand{NewGlobalRand(), NewSysRand(1)} {
		for i := 0; i < 1000; i++ {
			n := rnd.Intn(20)
			assert.GreaterOrEqual(t, n, 0)
			assert.Less(t, n, 20)
			f := rnd.Float32()
			assert.GreaterOrEqual(t, f, float32(0))
			assert.Less(t, f, float32(1))
		}
	}
}

func TestNew(t *testing.T) {
	_, global := New(0).(*SysRand)
	assert.True(t, global)
	assert.Nil(t, New(0).(*SysRand).Rand)
	assert.NotNil(t, New(3).(*SysRand).Rand)
}
