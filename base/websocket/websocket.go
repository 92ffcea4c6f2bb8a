// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package websocket provides a simple WebSocket [Client] and a
// broadcasting [Hub] server on top of gorilla/websocket.
package websocket

import "github.com/gorilla/websocket"

// MessageTypes are the types of messages that can be sent and received.
type MessageTypes int

const (
	// TextMessage is a UTF-8 encoded text message such as JSON.
	TextMessage MessageTypes = websocket.TextMessage

	// BinaryMessage is a binary data message.
	BinaryMessage MessageTypes = websocket.BinaryMessage
)
