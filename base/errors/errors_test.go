// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("oops")
	assert.Equal(t, err, Log(err))
}

func TestLog1(t *testing.T) {
	assert.Equal(t, 42, Log1(42, nil))
	assert.Equal(t, 42, Log1(42, New("oops")))
}

func TestErrorf(t *testing.T) {
	base := New("base")
	err := Errorf("wrapped: %w", base)
	assert.True(t, Is(err, base))
	assert.Equal(t, base, Unwrap(err))
}

func TestMust(t *testing.T) {
	Must(nil)
	assert.Panics(t, func() { Must(New("oops")) })
}
