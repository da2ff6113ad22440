// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import "github.com/GameHunter101/v4go/math32"

// Face indexes the six faces of a [CubeMap], in the standard
// +X, -X, +Y, -Y, +Z, -Z layer order used by cube texture bindings.
type Face int32

const (
	PositiveX Face = iota
	NegativeX
	PositiveY
	NegativeY
	PositiveZ
	NegativeZ
)

// CubeMap is an environment cube texture: six square faces sampled by
// a world-space direction vector.
type CubeMap struct {
	Faces [6]*Texture2D
}

// NewCubeMap returns a new [CubeMap] with six faces of the given size.
func NewCubeMap(size int) *CubeMap {
	cm := &CubeMap{}
	for i := range cm.Faces {
		cm.Faces[i] = NewTexture2D(size, size)
	}
	return cm
}

// NewCubeMapUniform returns a new 1x1-per-face [CubeMap] with each face
// filled with the corresponding color, for testing and flat environments.
func NewCubeMapUniform(colors [6]math32.Vector4) *CubeMap {
	cm := NewCubeMap(1)
	for i, clr := range colors {
		cm.Faces[i].Fill(clr)
	}
	return cm
}

// FaceUV returns the face selected by the given direction along with
// the UV coordinates within that face, using standard major-axis cube
// mapping. The zero direction is a caller precondition violation.
func (cm *CubeMap) FaceUV(dir math32.Vector3) (Face, math32.Vector2) {
	ax := math32.Abs(dir.X)
	ay := math32.Abs(dir.Y)
	az := math32.Abs(dir.Z)

	var face Face
	var ma, sc, tc float32
	switch {
	case ax >= ay && ax >= az:
		ma = ax
		if dir.X >= 0 {
			face, sc, tc = PositiveX, -dir.Z, -dir.Y
		} else {
			face, sc, tc = NegativeX, dir.Z, -dir.Y
		}
	case ay >= az:
		ma = ay
		if dir.Y >= 0 {
			face, sc, tc = PositiveY, dir.X, dir.Z
		} else {
			face, sc, tc = NegativeY, dir.X, -dir.Z
		}
	default:
		ma = az
		if dir.Z >= 0 {
			face, sc, tc = PositiveZ, dir.X, -dir.Y
		} else {
			face, sc, tc = NegativeZ, -dir.X, -dir.Y
		}
	}
	uv := math32.Vec2((sc/ma+1)/2, (tc/ma+1)/2)
	return face, uv
}

// Sample samples the cube map along the given direction, which need
// not be normalized.
func (cm *CubeMap) Sample(dir math32.Vector3) math32.Vector4 {
	face, uv := cm.FaceUV(dir)
	return cm.Faces[face].Sample(uv)
}
