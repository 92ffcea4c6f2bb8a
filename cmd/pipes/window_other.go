// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen || !((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package main

import (
	"context"

	"cogentcore.org/pipes/base/errors"
	"cogentcore.org/pipes/config"
	"cogentcore.org/pipes/pipes"
)

func window(ctx context.Context, a *app, cfg *config.Config, is *pipes.Instances) error {
	return errors.New("pipes: window mode is not available on this platform; use -mode term")
}
