// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipes

import (
	"fmt"
	"strings"

	"cogentcore.org/pipes/base/randx"
	"cogentcore.org/pipes/math32"
)

// ColorModes determines how a new pipe's color is drawn.
type ColorModes int32

const (
	// ColorRGB draws each channel uniformly from [0, 1).
	ColorRGB ColorModes = iota

	// ColorHSB draws a uniform hue at fixed saturation and brightness,
	// which avoids the muddy dark colors RGB sampling produces.
	ColorHSB

	ColorModesN
)

var colorModeNames = [ColorModesN]string{"rgb", "hsb"}

func (cm ColorModes) String() string {
	if cm < 0 || cm >= ColorModesN {
		return fmt.Sprintf("ColorModes(%d)", int32(cm))
	}
	return colorModeNames[cm]
}

// SetString sets the mode from its name, ignoring case.
func (cm *ColorModes) SetString(s string) error {
	for i, nm := range colorModeNames {
		if strings.EqualFold(nm, s) {
			*cm = ColorModes(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid color mode (rgb or hsb)", s)
}

func (cm ColorModes) MarshalText() ([]byte, error) {
	return []byte(cm.String()), nil
}

func (cm *ColorModes) UnmarshalText(b []byte) error {
	return cm.SetString(string(b))
}

// HSB saturation and brightness used by [ColorHSB].
const (
	HSBSaturation = 0.8
	HSBBrightness = 1
)

// RandomColor returns a new pipe color drawn from rnd according to mode.
func RandomColor(rnd randx.Rand, mode ColorModes) math32.Vector3 {
	if mode == ColorHSB {
		return HSBToRGB(rnd.Float32(), HSBSaturation, HSBBrightness)
	}
	return math32.Vec3(rnd.Float32(), rnd.Float32(), rnd.Float32())
}

// HSBToRGB converts a hue in [0, 1), saturation and brightness
// in [0, 1] to linear RGB components.
func HSBToRGB(hue, saturation, brightness float32) math32.Vector3 {
	if saturation <= 0 {
		return math32.Vector3Scalar(brightness)
	}
	h := (hue - math32.Floor(hue)) * 6
	sector := math32.Floor(h)
	f := h - sector
	p := brightness * (1 - saturation)
	q := brightness * (1 - saturation*f)
	t := brightness * (1 - saturation*(1-f))
	switch int(sector) {
	case 0:
		return math32.Vec3(brightness, t, p)
	case 1:
		return math32.Vec3(q, brightness, p)
	case 2:
		return math32.Vec3(p, brightness, t)
	case 3:
		return math32.Vec3(p, q, brightness)
	case 4:
		return math32.Vec3(t, p, brightness)
	default:
		return math32.Vec3(brightness, p, q)
	}
}
