// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package skybox implements the environment reflection stage: it
// reconstructs a world-space view ray from a clip-space position via
// the camera's inverse view-projection matrix and samples an
// environment cube map along it. The stage draws a full-screen
// triangle or quad; there is no real geometry.
package skybox

import (
	"github.com/GameHunter101/v4go/camera"
	"github.com/GameHunter101/v4go/math32"
	"github.com/GameHunter101/v4go/texture"
)

// Mode selects how the reconstruction matrix is composed. Both modes
// share the direction flip; they are configurations of one stage, not
// separate stages.
type Mode int32

const (
	// Standard reconstructs the ray directly from the inverse
	// view-projection matrix. The result is sensitive to camera
	// translation.
	Standard Mode = iota

	// CameraRecentered composes a translation by the negated camera
	// world position with the inverse view-projection, so the
	// reconstructed direction ignores camera translation and the
	// environment appears infinitely distant regardless of camera
	// movement.
	CameraRecentered
)

func (md Mode) String() string {
	switch md {
	case Standard:
		return "Standard"
	case CameraRecentered:
		return "CameraRecentered"
	}
	return "Mode(invalid)"
}

// Direction reconstructs the world-space sampling direction for the
// given clip-space position. The perspective divide is explicit, and
// the Z component of the result is flipped to compensate for the
// handedness mismatch between the cube-map convention and the view
// convention. The flip is part of the contract for both modes;
// omitting it inverts the environment.
func Direction(clip math32.Vector4, cam *camera.Camera, md Mode) math32.Vector3 {
	m := &cam.InverseViewProjection
	if md == CameraRecentered {
		recenter := math32.Translate3D(-cam.Position.X, -cam.Position.Y, -cam.Position.Z)
		m = recenter.Mul(m)
	}
	t := m.MulVector4(clip)
	return t.PerspDiv().Normal().Mul(math32.Vec3(1, 1, -1))
}

// Sample runs the full fragment stage: ray reconstruction followed by
// the cube map fetch.
func Sample(cube *texture.CubeMap, clip math32.Vector4, cam *camera.Camera, md Mode) math32.Vector4 {
	return cube.Sample(Direction(clip, cam, md))
}
