// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipes

import (
	"testing"

	"cogentcore.org/pipes/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstances(t *testing.T) {
	is := NewInstances(3)
	red := Instance{Color: math32.Vec3(1, 0, 0)}
	green := Instance{Color: math32.Vec3(0, 1, 0)}
	blue := Instance{Color: math32.Vec3(0, 0, 1)}

	require.NoError(t, is.AddInstances(Bent, red, green))
	require.NoError(t, is.AddInstances(Bent, blue))
	assert.Error(t, is.AddInstances(Bent, red))
	assert.Equal(t, 3, is.Len(Bent))
	assert.Equal(t, uint64(2), is.Version(Bent))

	// removal takes the most recently added
	require.NoError(t, is.RemoveInstances(Bent, 2))
	insts, v := is.Snapshot(Bent, nil)
	assert.Equal(t, []Instance{red}, insts)
	assert.Equal(t, uint64(3), v)
	assert.Error(t, is.RemoveInstances(Bent, 2))

	require.NoError(t, is.AddInstances(End, blue))
	assert.Equal(t, 2, is.Total())
	ClearAllGroups(is)
	assert.Equal(t, 0, is.Total())
	assert.Equal(t, uint64(4), is.Version(Bent))

	assert.Error(t, is.AddInstances(MeshGroupsN, red))
	assert.Error(t, is.RemoveInstances(-1, 1))

	is.SetCapacity(1)
	require.NoError(t, is.AddInstances(Start, red))
	assert.Error(t, is.AddInstances(Start, red))
}

func TestMeshGroupsString(t *testing.T) {
	assert.Equal(t, "Single", Single.String())
	assert.Equal(t, "End", End.String())
	assert.Equal(t, "MeshGroups(7)", MeshGroups(7).String())
}
