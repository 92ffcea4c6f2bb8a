// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	c := Clock{Tick: 50 * time.Millisecond}
	assert.Equal(t, 0, c.Advance(30*time.Millisecond))
	assert.Equal(t, 1, c.Advance(30*time.Millisecond))
	assert.Equal(t, 10*time.Millisecond, c.Pending())
	assert.Equal(t, 4, c.Advance(190*time.Millisecond))
	assert.Equal(t, time.Duration(0), c.Pending())
	assert.Equal(t, 0, c.Advance(-time.Second))

	c.Advance(20 * time.Millisecond)
	c.Reset()
	assert.Equal(t, time.Duration(0), c.Pending())

	var def Clock
	assert.Equal(t, 1, def.Advance(DefaultTick))
}
