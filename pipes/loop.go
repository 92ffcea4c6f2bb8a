// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipes

import (
	"context"
	"time"
)

// DefaultFrame is the default frame interval of [Run].
const DefaultFrame = 16 * time.Millisecond

// Run drives app from a ticker until the app asks to exit, the events
// channel is closed, or ctx is done. Each frame passes the measured
// wall time since the previous frame to [App.OnUpdate] and then renders.
// A nil events channel delivers no events.
// Front ends that must own the frame loop, such as a window on the
// main thread, call the [App] methods directly instead.
func Run(ctx context.Context, app App, events <-chan Event, frame time.Duration) error {
	if frame <= 0 {
		frame = DefaultFrame
	}
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if app.OnEvent(ev) == Exit {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if app.OnUpdate(dt) == Exit {
				return nil
			}
			app.OnRender()
		}
	}
}
