// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lighting implements the normal-mapped Blinn-Phong fragment
// stage. The shading math can be evaluated in either world space or
// tangent space; the two formulations are numerically equivalent for an
// orthonormal tangent basis, and the tangent-space form is cheaper when
// many lights are evaluated per fragment, since positions are
// transformed once per vector instead of once per normal.
package lighting

import (
	"github.com/GameHunter101/v4go/math32"
	"github.com/GameHunter101/v4go/texture"
	"github.com/GameHunter101/v4go/vertex"
)

// Space selects which space the lighting math is evaluated in.
type Space int32

const (
	// WorldSpace transforms the decoded tangent-space normal into
	// world space through the TBN matrix and lights it there.
	WorldSpace Space = iota

	// TangentSpace transforms the light, fragment, and camera
	// positions into tangent space through the TBN transpose and
	// lights the decoded normal directly.
	TangentSpace
)

func (sp Space) String() string {
	switch sp {
	case WorldSpace:
		return "WorldSpace"
	case TangentSpace:
		return "TangentSpace"
	}
	return "Space(invalid)"
}

// Shininess exponents used by the reference materials.
const (
	// DefaultShininess is the standard specular exponent.
	DefaultShininess = 32

	// SoftShininess is the broader highlight used by some materials.
	SoftShininess = 20
)

// Material is the per-draw material state: a diffuse color texture, a
// tangent-space normal map, and the specular exponent.
type Material struct {
	// Color is the diffuse base color texture.
	Color *texture.Texture2D

	// Normal is the tangent-space normal map, encoded in [0, 1].
	Normal *texture.Texture2D

	// Shininess is the specular exponent, a material parameter.
	Shininess float32
}

// Light is a point light at a world position.
type Light struct {
	Pos math32.Vector3
}

// Terms are the scalar lighting terms for one fragment, exposed so the
// two [Space] formulations can be compared directly.
type Terms struct {
	Diffuse  float32
	Specular float32
}

// ShadeTerms computes the Blinn-Phong diffuse and specular terms for a
// fragment in the given space. The tangent basis in the varyings must
// be normalized (and orthonormal for the two spaces to agree); the
// fragment, light, and camera positions must not coincide (degenerate
// directions are a caller precondition).
func ShadeTerms(sp Space, vr *vertex.Varyings, normalTS math32.Vector3, lightPos, camPos math32.Vector3, shininess float32) Terms {
	tbn := math32.Matrix3FromVectors(vr.Tangent, vr.Bitangent, vr.Normal)

	var n, fragPos math32.Vector3
	switch sp {
	case TangentSpace:
		inv := tbn.Transpose()
		n = normalTS.Normal()
		fragPos = inv.MulVector3(vr.WorldPos)
		lightPos = inv.MulVector3(lightPos)
		camPos = inv.MulVector3(camPos)
	default:
		n = tbn.MulVector3(normalTS).Normal()
		fragPos = vr.WorldPos
	}

	lightDir := lightPos.Sub(fragPos).Normal()
	viewDir := camPos.Sub(fragPos).Normal()
	halfDir := lightDir.Add(viewDir).Normal()

	return Terms{
		Diffuse:  math32.Max(n.Dot(lightDir), 0),
		Specular: math32.Pow(math32.Max(n.Dot(halfDir), 0), shininess),
	}
}

// Shade runs the full fragment stage: it samples the material textures
// at the interpolated texcoord, decodes the tangent-space normal, and
// returns the lit color. The alpha channel carries the per-draw
// immediate scale value, not a lighting result; that is the compositing
// contract for downstream debug overlays.
func Shade(sp Space, vr *vertex.Varyings, mt *Material, lt *Light, camPos math32.Vector3, scale float32) math32.Vector4 {
	base := math32.Vector3FromVector4(mt.Color.Sample(vr.TexCoord))
	normalTS := texture.DecodeNormal(mt.Normal.Sample(vr.TexCoord))

	tm := ShadeTerms(sp, vr, normalTS, lt.Pos, camPos, mt.Shininess)

	rgb := base.MulScalar(tm.Diffuse).AddScalar(tm.Specular)
	return math32.Vector4FromVector3(rgb, scale)
}
