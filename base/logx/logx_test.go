// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerLevel(t *testing.T) {
	defer SetLevel(UserLevel)

	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf))

	SetLevel(slog.LevelInfo)
	logger.Debug("hidden")
	logger.Info("shown", "pipes", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "pipes=3")

	buf.Reset()
	SetLevel(slog.LevelDebug)
	logger.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "DEBUG")
}
