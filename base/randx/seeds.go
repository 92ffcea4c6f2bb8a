// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"time"
)

// NewSeed returns a new random seed based on the current time.
func NewSeed() int64 {
	return time.Now().UnixNano()
}

// New returns a [Rand] for the given seed: a separate seeded
// source if seed is non-zero, and otherwise the global source.
func New(seed int64) Rand {
	if seed == 0 {
		return NewGlobalRand()
	}
	return NewSysRand(seed)
}
