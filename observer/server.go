// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package observer streams instance group changes to remote viewers
// over WebSocket, and mirrors such a stream into local instance groups.
package observer

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"cogentcore.org/pipes/base/websocket"
	"cogentcore.org/pipes/math32"
	"cogentcore.org/pipes/pipes"
)

// Path is the WebSocket endpoint path.
const Path = "/ws"

// Server serves the observer stream for one set of instance groups.
type Server struct {

	// Groups is the instance groups the simulation should write to,
	// so that every change is broadcast.
	Groups *Groups

	// Grid is the grid size reported to observers.
	Grid math32.Vector3i

	// Hub manages the observer connections.
	Hub *websocket.Hub
}

// NewServer returns a new [Server] broadcasting changes to is.
func NewServer(is *pipes.Instances, grid math32.Vector3i) *Server {
	s := &Server{Grid: grid, Hub: websocket.NewHub()}
	s.Groups = &Groups{Instances: is, Hub: s.Hub}
	s.Hub.OnConnect = s.Snapshot
	return s
}

// Snapshot returns the messages that bring a new observer up to date:
// a [Hello] followed by an [Add] for each non-empty group.
func (s *Server) Snapshot() [][]byte {
	grid := [3]int32{s.Grid.X, s.Grid.Y, s.Grid.Z}
	msgs := [][]byte{encode(&Message{Type: Hello, Version: Version, Grid: &grid})}
	var buf []pipes.Instance
	for g := range pipes.MeshGroupsN {
		buf, _ = s.Groups.Instances.Snapshot(g, buf[:0])
		if len(buf) == 0 {
			continue
		}
		msg := &Message{Type: Add, Group: g, Instances: make([]Instance, len(buf))}
		for i, inst := range buf {
			msg.Instances[i] = NewInstance(inst)
		}
		msgs = append(msgs, encode(msg))
	}
	return msgs
}

// Handler returns the HTTP handler serving the observer endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(Path, s.Hub)
	mux.HandleFunc("/healthz", func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusOK)
	})
	return mux
}

// ListenAndServe serves on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		s.Hub.Close()
		sctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(sctx)
	}()
	slog.Info("observer: serving", "addr", ln.Addr().String(), "path", Path)
	err := srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
