// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/pipes/base/errors"
	"cogentcore.org/pipes/base/websocket"
	"cogentcore.org/pipes/math32"
	"cogentcore.org/pipes/pipes"
)

// Mirror connects to the observer stream at url and applies every
// change to ig until ctx is done or the server closes the stream.
// If onHello is non-nil it is called with the grid size on each [Hello].
func Mirror(ctx context.Context, url string, ig pipes.InstanceGroups, onHello func(grid math32.Vector3i)) error {
	c, err := websocket.Connect(url)
	if err != nil {
		return err
	}
	errs := make(chan error, 1)
	report := func(err error) {
		select {
		case errs <- err:
		default:
		}
	}
	c.OnMessage(func(typ websocket.MessageTypes, b []byte) {
		msg, err := Decode(b)
		if err != nil {
			report(err)
			return
		}
		if msg.Type == Hello {
			if msg.Version != Version {
				report(fmt.Errorf("observer.Mirror: protocol version %d, want %d", msg.Version, Version))
				return
			}
			pipes.ClearAllGroups(ig)
			if onHello != nil && msg.Grid != nil {
				onHello(math32.Vec3i(msg.Grid[0], msg.Grid[1], msg.Grid[2]))
			}
			return
		}
		if err := msg.Apply(ig); err != nil {
			report(err)
		}
	})
	select {
	case <-ctx.Done():
		errors.Log(c.Close())
		select {
		case <-c.Done():
		case <-time.After(time.Second):
		}
		return nil
	case <-c.Done():
		slog.Info("observer.Mirror: stream closed", "url", url)
		return nil
	case err := <-errs:
		errors.Log(c.Close())
		return err
	}
}
