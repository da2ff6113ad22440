// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texture provides the read-only sampled inputs and writable
// color targets consumed by the shading stages: 2D textures, cube maps,
// and the normal-map decode. Texels are RGBA float32. Textures are
// safe for concurrent reads by any number of invocations; writes are
// only made by code that owns the target (one invocation per texel).
package texture

import (
	"fmt"

	"github.com/GameHunter101/v4go/math32"
)

// Texture2D is a 2D RGBA float32 texture. It doubles as a writable
// color target for render-to-texture and post-process passes.
type Texture2D struct {
	Width  int
	Height int

	// Pixels holds texels in row-major order, row 0 at v=0.
	Pixels []math32.Vector4
}

// NewTexture2D returns a new [Texture2D] with the given dimensions,
// cleared to transparent black.
func NewTexture2D(width, height int) *Texture2D {
	return &Texture2D{
		Width:  width,
		Height: height,
		Pixels: make([]math32.Vector4, width*height),
	}
}

// NewTexture2DUniform returns a new 1x1 [Texture2D] holding the single
// given color, for flat-color material inputs.
func NewTexture2DUniform(clr math32.Vector4) *Texture2D {
	tx := NewTexture2D(1, 1)
	tx.Pixels[0] = clr
	return tx
}

func (tx *Texture2D) String() string {
	return fmt.Sprintf("Texture2D(%dx%d)", tx.Width, tx.Height)
}

// At returns the texel at the given integer coordinates, which must be
// in bounds.
func (tx *Texture2D) At(x, y int) math32.Vector4 {
	return tx.Pixels[y*tx.Width+x]
}

// Set sets the texel at the given integer coordinates, which must be
// in bounds. Each invocation of a pass owns its output texel
// exclusively, so concurrent Set calls never alias.
func (tx *Texture2D) Set(x, y int, clr math32.Vector4) {
	tx.Pixels[y*tx.Width+x] = clr
}

// Fill sets every texel to the given color.
func (tx *Texture2D) Fill(clr math32.Vector4) {
	for i := range tx.Pixels {
		tx.Pixels[i] = clr
	}
}

// Sample returns the texel nearest to the given UV coordinates, with
// repeat wrapping in both dimensions.
func (tx *Texture2D) Sample(uv math32.Vector2) math32.Vector4 {
	x := wrap(uv.X, tx.Width)
	y := wrap(uv.Y, tx.Height)
	return tx.Pixels[y*tx.Width+x]
}

// TexelCenter returns the UV coordinates of the center of the given texel.
func (tx *Texture2D) TexelCenter(x, y int) math32.Vector2 {
	return math32.Vec2((float32(x)+0.5)/float32(tx.Width), (float32(y)+0.5)/float32(tx.Height))
}

// wrap maps a repeat-wrapped texture coordinate to a texel index in [0, n).
func wrap(coord float32, n int) int {
	i := int(math32.Floor(coord * float32(n)))
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// DecodeNormal decodes a tangent-space normal from a normal-map texel,
// mapping each component from the [0, 1] texture range to the [-1, 1]
// tangent-space range via 2*sample - 1.
func DecodeNormal(texel math32.Vector4) math32.Vector3 {
	return math32.Vector3FromVector4(texel).MulScalar(2).SubScalar(1)
}

// EncodeNormal is the inverse of [DecodeNormal], mapping a tangent-space
// normal into the [0, 1] texture range.
func EncodeNormal(n math32.Vector3) math32.Vector4 {
	return math32.Vector4FromVector3(n.MulScalar(0.5).AddScalar(0.5), 1)
}
