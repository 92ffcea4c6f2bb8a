// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipes

import "time"

// DefaultTick is the default interval between growth steps.
const DefaultTick = 50 * time.Millisecond

// Clock converts variable frame times into a whole number of fixed
// growth ticks, carrying the remainder between frames.
type Clock struct {

	// Tick is the fixed interval between steps. It must be positive.
	Tick time.Duration

	// accumulated time not yet consumed by a tick
	acc time.Duration
}

// Advance adds dt to the accumulator and returns how many ticks are
// now due, consuming them.
func (c *Clock) Advance(dt time.Duration) int {
	if c.Tick <= 0 {
		c.Tick = DefaultTick
	}
	if dt > 0 {
		c.acc += dt
	}
	n := 0
	for c.acc >= c.Tick {
		c.acc -= c.Tick
		n++
	}
	return n
}

// Pending returns the accumulated time not yet consumed.
func (c *Clock) Pending() time.Duration {
	return c.acc
}

// Reset discards any accumulated time.
func (c *Clock) Reset() {
	c.acc = 0
}
