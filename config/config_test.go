// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GameHunter101/v4go/lighting"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cf := New()
	assert.Equal(t, float32(32), cf.Lighting.Shininess)
	assert.Equal(t, lighting.WorldSpace, cf.Lighting.Space())
	assert.Equal(t, float32(600), cf.Blur.ReferenceResolution)
	assert.Equal(t, 8, cf.Compute.BufferLength)
	assert.False(t, cf.Skybox.Recentered)

	cf.Lighting.TangentSpace = true
	assert.Equal(t, lighting.TangentSpace, cf.Lighting.Space())
}

func TestSaveOpenRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "stages.yaml")
	cf := New()
	cf.Lighting.Shininess = lighting.SoftShininess
	cf.Skybox.Recentered = true
	assert.NoError(t, cf.Save(fn))

	got, err := Open(fn)
	assert.NoError(t, err)
	assert.Equal(t, cf, got)
}

func TestOpenPartialKeepsDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "partial.yaml")
	assert.NoError(t, os.WriteFile(fn, []byte("blur:\n  reference-resolution: 300\n"), 0666))

	cf, err := Open(fn)
	assert.NoError(t, err)
	assert.Equal(t, float32(300), cf.Blur.ReferenceResolution)
	// everything not named keeps its reference default
	assert.Equal(t, float32(32), cf.Lighting.Shininess)
	assert.Equal(t, 8, cf.Compute.BufferLength)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	fn := filepath.Join(t.TempDir(), "bad.yaml")
	assert.NoError(t, os.WriteFile(fn, []byte("{{{{"), 0666))
	_, err = Open(fn)
	assert.Error(t, err)

	// the optional-file form falls back to defaults
	cf := OpenOrDefaults(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Equal(t, New(), cf)
}
