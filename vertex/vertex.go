// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vertex implements the vertex transform stage: local-space
// geometry (plus an optional per-instance transform) into clip space,
// with the interpolated attributes the fragment stages consume.
package vertex

import (
	"github.com/GameHunter101/v4go/camera"
	"github.com/GameHunter101/v4go/math32"
)

// Instance is a per-draw-instance 4x4 transform delivered as four
// column vectors, matching how instance matrices arrive through vertex
// attribute bindings (one attribute slot per column).
type Instance struct {
	Cols [4]math32.Vector4
}

// IdentityInstance returns an [Instance] carrying the identity transform.
func IdentityInstance() *Instance {
	return &Instance{Cols: [4]math32.Vector4{
		math32.Vec4(1, 0, 0, 0),
		math32.Vec4(0, 1, 0, 0),
		math32.Vec4(0, 0, 1, 0),
		math32.Vec4(0, 0, 0, 1),
	}}
}

// Matrix recomposes the instance columns into a [math32.Matrix4].
func (in *Instance) Matrix() math32.Matrix4 {
	return math32.Matrix4FromVectors(in.Cols[0], in.Cols[1], in.Cols[2], in.Cols[3])
}

// Attributes are the per-vertex inputs. Each stage mode uses a subset:
// position-only transforms read only Position; the full-attribute mode
// reads everything.
type Attributes struct {
	Position  math32.Vector3
	TexCoord  math32.Vector2
	Normal    math32.Vector3
	Tangent   math32.Vector3
	Bitangent math32.Vector3
}

// Varyings is the vertex-to-fragment payload. ClipPos is always
// produced; the remaining fields are world-space, with directional
// vectors already normalized.
type Varyings struct {
	ClipPos   math32.Vector4
	WorldPos  math32.Vector3
	TexCoord  math32.Vector2
	Normal    math32.Vector3
	Tangent   math32.Vector3
	Bitangent math32.Vector3
}

// TransformPoint is the position-only mode: it transforms a local
// position by the given model matrix, with no camera. The output space
// is whatever the model matrix defines.
func TransformPoint(model *math32.Matrix4, pos math32.Vector3) math32.Vector4 {
	return model.MulVector4(math32.Vector4FromVector3(pos, 1))
}

// Transform is the full-attribute mode: world position from the
// instance transform, clip position from the camera view-projection,
// texcoord passthrough, and the world-space tangent basis for
// tangent-space lighting. A nil instance means the identity transform.
//
// Directional attributes are transformed by the instance matrix and
// then renormalized, rather than using an inverse-transpose normal
// matrix. This is a simplification that is only correct for
// uniform-scale instances; non-uniform scale biases the basis.
func Transform(at *Attributes, inst *Instance, cam *camera.Camera) Varyings {
	model := math32.Identity4()
	if inst != nil {
		model = inst.Matrix()
	}
	world := model.MulVector4(math32.Vector4FromVector3(at.Position, 1))
	vr := Varyings{
		ClipPos:   cam.ViewProjection.MulVector4(world),
		WorldPos:  math32.Vector3FromVector4(world),
		TexCoord:  at.TexCoord,
		Normal:    at.Normal.MulMatrix4AsVector4(&model, 0).Normal(),
		Tangent:   at.Tangent.MulMatrix4AsVector4(&model, 0).Normal(),
		Bitangent: at.Bitangent.MulMatrix4AsVector4(&model, 0).Normal(),
	}
	return vr
}
