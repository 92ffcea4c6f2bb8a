// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import (
	"image"
	"unicode"

	"cogentcore.org/pipes/pipes"
	"github.com/gdamore/tcell/v2"
)

// Events starts a goroutine that polls screen and delivers its key
// and resize events. The channel is closed once the screen is
// finalized.
func Events(screen tcell.Screen) <-chan pipes.Event {
	events := make(chan pipes.Event, 100)
	go func() {
		defer close(events)
		for {
			tev := screen.PollEvent()
			if tev == nil {
				return
			}
			if ev, ok := convert(tev); ok {
				events <- ev
			}
		}
	}()
	return events
}

// convert returns the [pipes.Event] for a tcell event, if any.
func convert(tev tcell.Event) (pipes.Event, bool) {
	switch tev := tev.(type) {
	case *tcell.EventKey:
		return pipes.Event{Type: pipes.KeyEvent, Key: mapKey(tev)}, true
	case *tcell.EventResize:
		w, h := tev.Size()
		return pipes.Event{Type: pipes.ResizeEvent, Size: image.Point{w, h}}, true
	}
	return pipes.Event{}, false
}

// mapKey returns the binding for a key event. Ctrl-C and q also exit.
func mapKey(ev *tcell.EventKey) pipes.Keys {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return pipes.KeyEscape
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'c':
			return pipes.KeyC
		case 'q':
			return pipes.KeyEscape
		}
	}
	return pipes.KeyOther
}
