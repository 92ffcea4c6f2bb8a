// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package websocket

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, srv *httptest.Server) (*Client, chan string) {
	t.Helper()
	c, err := Connect("ws" + strings.TrimPrefix(srv.URL, "http"))
	require.NoError(t, err)
	msgs := make(chan string, 16)
	c.OnMessage(func(typ MessageTypes, msg []byte) {
		msgs <- string(msg)
	})
	return c, msgs
}

func receive(t *testing.T, msgs chan string) string {
	t.Helper()
	select {
	case m := <-msgs:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return ""
	}
}

func waitClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	assert.Eventually(t, func() bool { return h.Len() == n }, 2*time.Second, 5*time.Millisecond)
}

func TestHubBroadcast(t *testing.T) {
	h := NewHub()
	h.OnConnect = func() [][]byte { return [][]byte{[]byte("hello")} }
	srv := httptest.NewServer(h)
	defer srv.Close()

	c1, m1 := dial(t, srv)
	c2, m2 := dial(t, srv)
	waitClients(t, h, 2)
	assert.Equal(t, "hello", receive(t, m1))
	assert.Equal(t, "hello", receive(t, m2))

	h.Broadcast([]byte("one"))
	h.Broadcast([]byte("two"))
	assert.Equal(t, "one", receive(t, m1))
	assert.Equal(t, "two", receive(t, m1))
	assert.Equal(t, "one", receive(t, m2))
	assert.Equal(t, "two", receive(t, m2))

	require.NoError(t, c1.Close())
	waitClients(t, h, 1)

	closed := make(chan struct{})
	c2.OnClose(func() { close(closed) })
	h.Close()
	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("client not closed")
	}
	assert.Equal(t, 0, h.Len())
}

func TestHubSlowClient(t *testing.T) {
	h := NewHub()
	h.Queue = 1
	out := make(chan []byte, 1)
	h.conns[1] = out
	h.Broadcast([]byte("a"))
	assert.Equal(t, 1, h.Len())
	h.Broadcast([]byte("b"))
	assert.Equal(t, 0, h.Len())
}

func TestIsLoopback(t *testing.T) {
	assert.True(t, isLoopback("127.0.0.1:1234"))
	assert.True(t, isLoopback("[::1]:80"))
	assert.False(t, isLoopback("10.1.2.3:80"))
	assert.False(t, isLoopback("nonsense"))
}
