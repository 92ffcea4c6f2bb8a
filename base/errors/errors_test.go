// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("boom")
	assert.Equal(t, err, Log(err))
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 4, Log1(4, err))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("boom")) })
	assert.Equal(t, "a", Must1("a", nil))
	assert.Panics(t, func() { Must1("a", New("boom")) })
}

func TestJoin(t *testing.T) {
	a, b := New("a"), New("b")
	j := Join(a, nil, b)
	assert.True(t, Is(j, a))
	assert.True(t, Is(j, b))
	assert.Nil(t, Join(nil, nil))
}
