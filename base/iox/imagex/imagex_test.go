// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtToFormat(t *testing.T) {
	for ext, want := range map[string]Formats{".png": PNG, "JPG": JPEG, "jpeg": JPEG, ".tif": TIFF, "bmp": BMP, ".webp": WebP, "gif": GIF} {
		f, err := ExtToFormat(ext)
		assert.NoError(t, err, ext)
		assert.Equal(t, want, f, ext)
	}
	_, err := ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".xyz")
	assert.Error(t, err)
	assert.Equal(t, "png", PNG.String())
}

func TestSaveOpen(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 2, color.RGBA{200, 10, 20, 255})
	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		file := filepath.Join(t.TempDir(), "img"+ext)
		require.NoError(t, Save(img, file))
		got, _, err := Open(file)
		require.NoError(t, err, ext)
		assert.Equal(t, img.Bounds(), got.Bounds())
		r, g, b, _ := got.At(1, 2).RGBA()
		assert.Equal(t, []uint32{200, 10, 20}, []uint32{r >> 8, g >> 8, b >> 8}, ext)
	}
	assert.Error(t, Save(img, filepath.Join(t.TempDir(), "img.xyz")))
}

func TestDiffImage(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 2, 2))
	b := image.NewRGBA(image.Rect(0, 0, 2, 2))
	a.Set(0, 0, color.RGBA{100, 50, 0, 255})
	b.Set(0, 0, color.RGBA{40, 80, 0, 255})
	d := DiffImage(a, b)
	assert.Equal(t, color.RGBA{60, 30, 0, 255}, d.At(0, 0))
	assert.True(t, CompareColors(color.RGBA{10, 10, 10, 255}, color.RGBA{12, 8, 10, 255}, 2))
	assert.False(t, CompareColors(color.RGBA{10, 10, 10, 255}, color.RGBA{13, 10, 10, 255}, 2))
}

type recordT struct{ errs []string }

func (r *recordT) Errorf(format string, args ...any) {
	r.errs = append(r.errs, format)
}

func TestAssert(t *testing.T) {
	t.Chdir(t.TempDir())
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	img.Set(1, 1, color.RGBA{255, 255, 255, 255})

	rt := &recordT{}
	Assert(rt, img, "dot")
	assert.Empty(t, rt.errs)
	assert.FileExists(t, filepath.Join("testdata", "dot.png"))

	Assert(rt, img, "dot")
	assert.Empty(t, rt.errs)

	other := image.NewRGBA(img.Rect)
	Assert(rt, other, "dot")
	assert.Len(t, rt.errs, 1)
	assert.FileExists(t, filepath.Join("testdata", "dot.fail.png"))
	assert.FileExists(t, filepath.Join("testdata", "dot.diff.png"))
}
