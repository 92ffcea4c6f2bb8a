// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the default structured logger,
// with level tags colored for terminal output.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through the config Verbose flag.
var UserLevel = defaultUserLevel

// levelVar tracks UserLevel for the installed handler, so that
// changes made through [SetLevel] take effect immediately.
var levelVar = new(slog.LevelVar)

// SetDefaultLogger sets the default logger to be a text handler
// on stderr that uses [UserLevel], with colored level tags if
// stderr is a terminal with color support.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// SetLevel sets [UserLevel] and updates the level of any handler
// made by [NewHandler].
func SetLevel(level slog.Level) {
	UserLevel = level
	levelVar.Set(level)
}

// NewHandler returns a new text [slog.Handler] writing to w,
// coloring the level attribute when w supports it.
func NewHandler(w io.Writer) slog.Handler {
	levelVar.Set(UserLevel)
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{
		Level: levelVar,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			level, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(LevelString(out, level))
			return a
		},
	}
	return slog.NewTextHandler(w, opts)
}

// LevelString returns the name of the given level, colored
// according to its severity for the given output profile.
func LevelString(out *termenv.Output, level slog.Level) string {
	s := out.String(level.String())
	switch {
	case level >= slog.LevelError:
		s = s.Foreground(out.Color("1")).Bold()
	case level >= slog.LevelWarn:
		s = s.Foreground(out.Color("3"))
	case level >= slog.LevelInfo:
		s = s.Foreground(out.Color("6"))
	default:
		s = s.Faint()
	}
	return s.String()
}
