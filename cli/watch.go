// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"path/filepath"
	"time"

	"cogentcore.org/pipes/base/errors"
	"github.com/fsnotify/fsnotify"
)

// WatchDelay is how long [Watch] waits after the last change to a
// file before reporting it, so that a burst of writes from an editor
// is reported once.
var WatchDelay = 100 * time.Millisecond

// Watch calls changed each time the given file is written, created
// or renamed into place, until ctx is done. The containing directory
// is watched, so that editors that replace the file are handled.
// changed is called from a separate goroutine.
func Watch(ctx context.Context, file string, changed func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(file)
	if err != nil {
		watcher.Close()
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return err
	}
	go func() {
		defer watcher.Close()
		var timer *time.Timer
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(WatchDelay, changed)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return nil
}
