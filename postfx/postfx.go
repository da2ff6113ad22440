// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package postfx implements the screen-space post-process stages.
// Each stage operates purely on a previously rendered color texture
// plus a texcoord, independent of geometry; whole-target passes are
// dispatched one invocation per output texel.
package postfx

import (
	"fmt"

	"github.com/GameHunter101/v4go/compute"
	"github.com/GameHunter101/v4go/math32"
	"github.com/GameHunter101/v4go/texture"
)

// DefaultReferenceResolution is the target resolution the reference
// blur distance was tuned against.
const DefaultReferenceResolution = 600

// Blur is a four-tap cross box blur. The sampling offset is
// resolution-dependent configuration, not a structural constant.
type Blur struct {
	// ReferenceResolution sets the texel sampling distance to
	// 2 / ReferenceResolution in UV units.
	ReferenceResolution float32
}

// NewBlur returns a [Blur] with the reference configuration.
func NewBlur() *Blur {
	return &Blur{ReferenceResolution: DefaultReferenceResolution}
}

// TexelDistance returns the UV-space sampling offset.
func (bl *Blur) TexelDistance() float32 {
	return 2 / bl.ReferenceResolution
}

// Fragment computes one blurred texel: the average of the four samples
// offset in the cardinal directions. The center sample is excluded;
// output = (top + bottom + left + right) / 4, exactly as the reference
// formulates it.
func (bl *Blur) Fragment(src *texture.Texture2D, uv math32.Vector2) math32.Vector4 {
	d := bl.TexelDistance()
	sum := src.Sample(math32.Vec2(uv.X, uv.Y-d)).
		Add(src.Sample(math32.Vec2(uv.X, uv.Y+d))).
		Add(src.Sample(math32.Vec2(uv.X-d, uv.Y))).
		Add(src.Sample(math32.Vec2(uv.X+d, uv.Y)))
	return sum.MulScalar(0.25)
}

// Apply runs the blur over the whole source into dst, one invocation
// per texel. The two textures must have identical dimensions and must
// not alias; a dimension mismatch is a configuration error.
func (bl *Blur) Apply(dst, src *texture.Texture2D) error {
	return apply(dst, src, bl.Fragment)
}

// Overlay alpha-blends a fixed color over the input.
type Overlay struct {
	// Color is the overlay color.
	Color math32.Vector3

	// Alpha is the blend factor: 0 leaves the input unchanged,
	// 1 replaces it with Color.
	Alpha float32
}

// Fragment computes one composited texel:
// alpha*overlayColor + (1-alpha)*inputColor.
func (ov *Overlay) Fragment(src *texture.Texture2D, uv math32.Vector2) math32.Vector4 {
	in := src.Sample(uv)
	over := math32.Vector4FromVector3(ov.Color, in.W)
	return over.MulScalar(ov.Alpha).Add(in.MulScalar(1 - ov.Alpha))
}

// Apply runs the overlay over the whole source into dst, one
// invocation per texel, under the same constraints as [Blur.Apply].
func (ov *Overlay) Apply(dst, src *texture.Texture2D) error {
	return apply(dst, src, ov.Fragment)
}

// apply dispatches a per-texel fragment function over dst.
func apply(dst, src *texture.Texture2D, frag func(src *texture.Texture2D, uv math32.Vector2) math32.Vector4) error {
	if dst.Width != src.Width || dst.Height != src.Height {
		return fmt.Errorf("postfx: target size %dx%d does not match source size %dx%d",
			dst.Width, dst.Height, src.Width, src.Height)
	}
	compute.Dispatch(dst.Width*dst.Height, func(i int) {
		x := i % dst.Width
		y := i / dst.Width
		dst.Set(x, y, frag(src, src.TexelCenter(x, y)))
	})
	return nil
}
