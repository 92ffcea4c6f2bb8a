// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipes

import (
	"fmt"
	"sync"
)

// Instances is the in-memory [InstanceGroups] implementation, with
// one bounded collection per mesh group. Renderers read it through
// [Instances.Snapshot] and only re-upload groups whose version changed.
// It is safe for concurrent use.
type Instances struct {

	// Capacity is the maximum number of instances in each group.
	Capacity int

	mu       sync.Mutex
	groups   [MeshGroupsN][]Instance
	versions [MeshGroupsN]uint64
}

// NewInstances returns a new [Instances] with the given per-group capacity.
func NewInstances(capacity int) *Instances {
	is := &Instances{Capacity: capacity}
	for g := range MeshGroupsN {
		is.groups[g] = make([]Instance, 0, capacity)
	}
	return is
}

func (is *Instances) checkGroup(group MeshGroups) error {
	if group < 0 || group >= MeshGroupsN {
		return fmt.Errorf("pipes.Instances: invalid mesh group %d", int32(group))
	}
	return nil
}

func (is *Instances) AddInstances(group MeshGroups, insts ...Instance) error {
	if err := is.checkGroup(group); err != nil {
		return err
	}
	is.mu.Lock()
	defer is.mu.Unlock()
	n := len(is.groups[group])
	if n+len(insts) > is.Capacity {
		return fmt.Errorf("pipes.Instances: adding %d to group %v with %d of capacity %d", len(insts), group, n, is.Capacity)
	}
	is.groups[group] = append(is.groups[group], insts...)
	is.versions[group]++
	return nil
}

func (is *Instances) RemoveInstances(group MeshGroups, n int) error {
	if err := is.checkGroup(group); err != nil {
		return err
	}
	is.mu.Lock()
	defer is.mu.Unlock()
	cur := len(is.groups[group])
	if n < 0 || n > cur {
		return fmt.Errorf("pipes.Instances: removing %d from group %v with %d", n, group, cur)
	}
	is.groups[group] = is.groups[group][:cur-n]
	is.versions[group]++
	return nil
}

func (is *Instances) ClearInstances(group MeshGroups) {
	if is.checkGroup(group) != nil {
		return
	}
	is.mu.Lock()
	defer is.mu.Unlock()
	is.groups[group] = is.groups[group][:0]
	is.versions[group]++
}

// SetCapacity changes the per-group capacity. Groups already over
// the new capacity keep their instances but cannot grow.
func (is *Instances) SetCapacity(capacity int) {
	is.mu.Lock()
	defer is.mu.Unlock()
	is.Capacity = capacity
}

// Len returns the number of instances in the given group.
func (is *Instances) Len(group MeshGroups) int {
	is.mu.Lock()
	defer is.mu.Unlock()
	return len(is.groups[group])
}

// Total returns the number of instances across all groups.
func (is *Instances) Total() int {
	is.mu.Lock()
	defer is.mu.Unlock()
	n := 0
	for g := range MeshGroupsN {
		n += len(is.groups[g])
	}
	return n
}

// Version returns the modification counter for the given group,
// which increments on every change.
func (is *Instances) Version(group MeshGroups) uint64 {
	is.mu.Lock()
	defer is.mu.Unlock()
	return is.versions[group]
}

// Snapshot appends a copy of the given group's instances to dst
// and returns it along with the group's current version.
func (is *Instances) Snapshot(group MeshGroups, dst []Instance) ([]Instance, uint64) {
	is.mu.Lock()
	defer is.mu.Unlock()
	return append(dst, is.groups[group]...), is.versions[group]
}
