// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package websocket

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// DefaultQueue is the default per-connection outgoing message buffer.
const DefaultQueue = 1024

// Hub is a WebSocket server endpoint that broadcasts every message
// to all connected clients. Each connection has a buffered queue and
// its own writer goroutine; a client that falls behind so far that
// its queue fills is disconnected rather than slowing the broadcaster.
type Hub struct {

	// OnConnect, if set, returns the messages a new client receives
	// before any broadcast. It is called with the hub locked, so no
	// broadcast can interleave with it.
	OnConnect func() [][]byte

	// LoopbackOnly rejects connections from non-loopback addresses.
	LoopbackOnly bool

	// Queue is the per-connection outgoing buffer size.
	Queue int

	upgrader websocket.Upgrader
	nextID   atomic.Uint64

	mu    sync.Mutex
	conns map[uint64]chan []byte
}

// NewHub returns a new [Hub] accepting connections from any origin.
func NewHub() *Hub {
	return &Hub{
		Queue: DefaultQueue,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		conns: map[uint64]chan []byte{},
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Broadcast queues msg for every connected client.
func (h *Hub) Broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.broadcast(msg)
}

// Publish calls fn with the hub locked and broadcasts the message it
// returns, unless fn returns an error. Changes made by fn are thus
// ordered consistently with the [Hub.OnConnect] messages of clients
// connecting concurrently.
func (h *Hub) Publish(fn func() ([]byte, error)) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	msg, err := fn()
	if err != nil {
		return err
	}
	h.broadcast(msg)
	return nil
}

func (h *Hub) broadcast(msg []byte) {
	for id, out := range h.conns {
		select {
		case out <- msg:
		default:
			slog.Warn("websocket.Hub: client too slow, disconnecting", "id", id)
			close(out)
			delete(h.conns, id)
		}
	}
}

// Close disconnects all clients.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, out := range h.conns {
		close(out)
		delete(h.conns, id)
	}
}

func (h *Hub) join() (uint64, chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	q := h.Queue
	if q <= 0 {
		q = DefaultQueue
	}
	var initial [][]byte
	if h.OnConnect != nil {
		initial = h.OnConnect()
	}
	out := make(chan []byte, len(initial)+q)
	for _, msg := range initial {
		out <- msg
	}
	id := h.nextID.Add(1)
	h.conns[id] = out
	return id, out
}

func (h *Hub) leave(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if out, ok := h.conns[id]; ok {
		close(out)
		delete(h.conns, id)
	}
}

// ServeHTTP upgrades the request to a WebSocket connection and
// streams broadcasts to it until either side closes.
func (h *Hub) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if h.LoopbackOnly && !isLoopback(r.RemoteAddr) {
		http.Error(rw, "forbidden", http.StatusForbidden)
		return
	}
	conn, err := h.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	id, out := h.join()
	defer h.leave(id)
	slog.Debug("websocket.Hub: client connected", "id", id, "remote", r.RemoteAddr)

	// Writer goroutine.
	writeDone := make(chan struct{})
	go func() {
		defer close(writeDone)
		for b := range out {
			_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
				return
			}
		}
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "closing"), time.Now().Add(time.Second))
	}()

	// Reader loop: clients only send control frames and close.
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	select {
	case <-readDone:
	case <-writeDone:
	}
	slog.Debug("websocket.Hub: client disconnected", "id", id)
}

func isLoopback(remote string) bool {
	host, _, err := net.SplitHostPort(remote)
	if err != nil {
		host = remote
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
