// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TestingT is an interface wrapper around *testing.T
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages makes [Assert] overwrite the saved images instead of
// comparing against them. It is set if the environment variable
// "PIPES_UPDATE_TESTDATA" is "true".
var UpdateTestImages = os.Getenv("PIPES_UPDATE_TESTDATA") == "true"

// AssertTolerance is the per channel difference [Assert] accepts.
var AssertTolerance = 10

// CompareColors returns true if no channel of the two colors differs
// by more than tol.
func CompareColors(cc, ic color.RGBA, tol int) bool {
	return abs(int(cc.R)-int(ic.R)) <= tol && abs(int(cc.G)-int(ic.G)) <= tol &&
		abs(int(cc.B)-int(ic.B)) <= tol && abs(int(cc.A)-int(ic.A)) <= tol
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

// DiffImage returns the difference between two images,
// with pixels having the abs of the difference between pixels.
func DiffImage(a, b image.Image) image.Image {
	ab := a.Bounds()
	di := image.NewRGBA(ab)
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			ac, bc := rgbaAt(a, x, y), rgbaAt(b, x, y)
			di.SetRGBA(x, y, color.RGBA{
				uint8(abs(int(ac.R) - int(bc.R))),
				uint8(abs(int(ac.G) - int(bc.G))),
				uint8(abs(int(ac.B) - int(bc.B))),
				255,
			})
		}
	}
	return di
}

// firstDiff returns a description of the first pixel where img differs
// from want by more than tol, or "" if they match.
func firstDiff(img, want image.Image, tol int) string {
	ib, wb := img.Bounds(), want.Bounds()
	if ib != wb {
		return fmt.Sprintf("expected bounds %v, but got %v", wb, ib)
	}
	for y := ib.Min.Y; y < ib.Max.Y; y++ {
		for x := ib.Min.X; x < ib.Max.X; x++ {
			if ic, wc := rgbaAt(img, x, y), rgbaAt(want, x, y); !CompareColors(ic, wc, tol) {
				return fmt.Sprintf("expected color %v at (%d, %d), but got %v", wc, x, y, ic)
			}
		}
	}
	return ""
}

// Assert asserts that the given image is equivalent
// to the image stored at the given filename in the testdata directory,
// with ".png" added to the filename if there is no extension
// (eg: "single" becomes "testdata/single.png").
// If it is not, it fails the test with an error, saving the image and
// its difference next to the expected one, but continues its execution.
// If there is no image at the given filename, it creates the image.
func Assert(t TestingT, img image.Image, filename string) {
	filename = filepath.Join("testdata", filename)
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0750); err != nil {
		t.Errorf("imagex.Assert: error making testdata directory: %v", err)
	}
	ext := filepath.Ext(filename)
	failFilename := strings.TrimSuffix(filename, ext) + ".fail" + ext
	diffFilename := strings.TrimSuffix(filename, ext) + ".diff" + ext
	clean := func() {
		os.RemoveAll(failFilename)
		os.RemoveAll(diffFilename)
	}

	want, _, err := Open(filename)
	if UpdateTestImages || errors.Is(err, fs.ErrNotExist) {
		if err := Save(img, filename); err != nil {
			t.Errorf("imagex.Assert: error saving image: %v", err)
		}
		clean()
		return
	}
	if err != nil {
		t.Errorf("imagex.Assert: error opening saved image: %v", err)
		return
	}
	diff := firstDiff(img, want, AssertTolerance)
	if diff == "" {
		clean()
		return
	}
	t.Errorf("imagex.Assert: image for %s is not the same as expected; see %s; %s", filename, failFilename, diff)
	if err := Save(img, failFilename); err != nil {
		t.Errorf("imagex.Assert: error saving fail image: %v", err)
	}
	if img.Bounds() == want.Bounds() {
		if err := Save(DiffImage(img, want), diffFilename); err != nil {
			t.Errorf("imagex.Assert: error saving diff image: %v", err)
		}
	}
}
