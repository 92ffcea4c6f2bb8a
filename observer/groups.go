// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observer

import (
	"cogentcore.org/pipes/base/websocket"
	"cogentcore.org/pipes/pipes"
)

// Groups is a [pipes.InstanceGroups] that applies every change to
// an [pipes.Instances] and then broadcasts it to all observers.
type Groups struct {
	*pipes.Instances

	// Hub receives the encoded changes.
	Hub *websocket.Hub
}

func (gr *Groups) AddInstances(group pipes.MeshGroups, insts ...pipes.Instance) error {
	return gr.Hub.Publish(func() ([]byte, error) {
		if err := gr.Instances.AddInstances(group, insts...); err != nil {
			return nil, err
		}
		msg := &Message{Type: Add, Group: group, Instances: make([]Instance, len(insts))}
		for i, inst := range insts {
			msg.Instances[i] = NewInstance(inst)
		}
		return encode(msg), nil
	})
}

func (gr *Groups) RemoveInstances(group pipes.MeshGroups, n int) error {
	return gr.Hub.Publish(func() ([]byte, error) {
		if err := gr.Instances.RemoveInstances(group, n); err != nil {
			return nil, err
		}
		return encode(&Message{Type: Remove, Group: group, N: n}), nil
	})
}

func (gr *Groups) ClearInstances(group pipes.MeshGroups) {
	gr.Hub.Publish(func() ([]byte, error) {
		gr.Instances.ClearInstances(group)
		return encode(&Message{Type: Clear, Group: group}), nil
	})
}
