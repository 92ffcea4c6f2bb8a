// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipes

import "cogentcore.org/pipes/math32"

// DirLight is directional light, which is assumed to project light toward
// the origin based on its position, with no attenuation, like the Sun.
type DirLight struct {

	// Pos is the position of the light, which determines its direction.
	Pos math32.Vector3

	// Lumens is the brightness of the light in normalized 0-1 units.
	Lumens float32
}

// Lighting is the fixed lighting of the scene.
type Lighting struct {
	Dirs []DirLight

	// Ambient is the uniform light level added to every surface.
	Ambient float32
}

// DefaultLighting returns two directional lights and a dim ambient.
func DefaultLighting() Lighting {
	return Lighting{
		Dirs: []DirLight{
			{Pos: math32.Vec3(-2, 3, -4), Lumens: 1},
			{Pos: math32.Vec3(1, 2, 3), Lumens: 0.6},
		},
		Ambient: 0.2,
	}
}

// Shade returns the light level of a surface with the given unit normal.
func (lt *Lighting) Shade(norm math32.Vector3) float32 {
	light := lt.Ambient
	for _, dl := range lt.Dirs {
		light += max(norm.Dot(dl.Pos.Normal()), 0) * dl.Lumens
	}
	return light
}
