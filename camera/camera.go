// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides the shared camera uniform contract consumed
// by the vertex, fragment, and skybox stages.
package camera

import (
	"fmt"

	"github.com/GameHunter101/v4go/math32"
)

// Camera is the per-frame camera uniform block. It is produced once per
// frame by the renderer and is read-only for the duration of a draw; no
// stage mutates it, so it may be read concurrently by any number of
// invocations.
type Camera struct {
	// ViewProjection transforms world coordinates into clip space.
	ViewProjection math32.Matrix4

	// InverseViewProjection transforms clip coordinates back into
	// world space, used by the skybox stage to reconstruct view rays.
	InverseViewProjection math32.Matrix4

	// Position is the camera world position, with W = 1.
	Position math32.Vector4
}

// New returns a new [Camera] from the given view and projection
// matrices and camera world position. The view-projection product and
// its inverse are computed here, once per frame; an error is returned
// if the product is singular (degenerate camera data).
func New(view, projection *math32.Matrix4, pos math32.Vector3) (*Camera, error) {
	vp := projection.Mul(view)
	inv, err := vp.Inverse()
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	return &Camera{
		ViewProjection:        *vp,
		InverseViewProjection: *inv,
		Position:              math32.Vector4FromVector3(pos, 1),
	}, nil
}

// ViewMat returns the view matrix for a camera at pos looking at
// target, with the given up vector.
func ViewMat(pos, target, up math32.Vector3) *math32.Matrix4 {
	return math32.NewLookAt(pos, target, up)
}
