// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipes

import (
	"fmt"

	"cogentcore.org/pipes/math32"
)

// MeshGroups selects which segment shape an [Instance] is drawn with.
// The numbering is stable and shared with the renderers.
type MeshGroups int32

const (
	// Single is the first segment of a freshly started pipe, which
	// has no direction yet and is drawn as a free-floating stub.
	Single MeshGroups = iota

	// Start is the oriented start cap of a pipe that has grown.
	Start

	// Straight is a segment whose entry and exit are on opposite faces.
	Straight

	// Bent is a segment whose exit is perpendicular to its entry.
	Bent

	// End is the cap at the current growing tip of a pipe.
	End

	MeshGroupsN
)

var meshGroupNames = [MeshGroupsN]string{"Single", "Start", "Straight", "Bent", "End"}

func (g MeshGroups) String() string {
	if g < 0 || g >= MeshGroupsN {
		return fmt.Sprintf("MeshGroups(%d)", int32(g))
	}
	return meshGroupNames[g]
}

// Instance is one drawn segment: a mesh group member with its own
// color and model transform.
type Instance struct {
	Color math32.Vector3
	Model math32.Matrix4
}

// InstanceGroups is the boundary between growth and drawing. Each
// mesh group holds an ordered collection of instances, and removal
// always takes from the most recently added end.
type InstanceGroups interface {
	// AddInstances appends instances to the end of the given group.
	AddInstances(group MeshGroups, insts ...Instance) error

	// RemoveInstances drops the last n instances of the given group.
	RemoveInstances(group MeshGroups, n int) error

	// ClearInstances empties the given group.
	ClearInstances(group MeshGroups)
}

// ClearAllGroups empties every mesh group of ig.
func ClearAllGroups(ig InstanceGroups) {
	for g := range MeshGroupsN {
		ig.ClearInstances(g)
	}
}
