// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observer

import (
	"encoding/json"

	"cogentcore.org/pipes/math32"
	"cogentcore.org/pipes/pipes"
)

// Version is the observer protocol version.
const Version = 1

// MessageTypes are the kinds of observer [Message].
type MessageTypes string

const (
	// Hello is the first message on every connection.
	Hello MessageTypes = "hello"

	// Add appends instances to a group.
	Add MessageTypes = "add"

	// Remove drops the last N instances of a group.
	Remove MessageTypes = "remove"

	// Clear empties a group.
	Clear MessageTypes = "clear"
)

// Instance is the wire form of a [pipes.Instance].
type Instance struct {
	Color [3]float32  `json:"color"`
	Model [16]float32 `json:"model"`
}

// Message is one observer event, encoded as a JSON text frame.
type Message struct {
	Type MessageTypes `json:"type"`

	// Version is set on [Hello].
	Version int `json:"version,omitempty"`

	// Grid is the grid size, set on [Hello].
	Grid *[3]int32 `json:"grid,omitempty"`

	Group pipes.MeshGroups `json:"group"`

	// N is the number of instances removed, set on [Remove].
	N int `json:"n,omitempty"`

	// Instances are the instances added, set on [Add].
	Instances []Instance `json:"instances,omitempty"`
}

// NewInstance returns the wire form of inst.
func NewInstance(inst pipes.Instance) Instance {
	return Instance{
		Color: [3]float32{inst.Color.X, inst.Color.Y, inst.Color.Z},
		Model: inst.Model,
	}
}

// Instance returns the [pipes.Instance] for wi.
func (wi Instance) Instance() pipes.Instance {
	return pipes.Instance{
		Color: math32.Vec3(wi.Color[0], wi.Color[1], wi.Color[2]),
		Model: wi.Model,
	}
}

func encode(msg *Message) []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

// Decode parses a message received from an observer connection.
func Decode(b []byte) (*Message, error) {
	msg := &Message{}
	if err := json.Unmarshal(b, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Apply applies msg to ig, allowing a client to mirror the instance groups.
func (msg *Message) Apply(ig pipes.InstanceGroups) error {
	switch msg.Type {
	case Add:
		insts := make([]pipes.Instance, len(msg.Instances))
		for i, wi := range msg.Instances {
			insts[i] = wi.Instance()
		}
		return ig.AddInstances(msg.Group, insts...)
	case Remove:
		return ig.RemoveInstances(msg.Group, msg.N)
	case Clear:
		ig.ClearInstances(msg.Group)
	}
	return nil
}
