// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lighting

import (
	"testing"

	"github.com/GameHunter101/v4go/bind"
	"github.com/GameHunter101/v4go/math32"
	"github.com/GameHunter101/v4go/texture"
	"github.com/GameHunter101/v4go/vertex"
	"github.com/stretchr/testify/assert"
)

// orthonormalVaryings returns varyings with the given orthonormal
// tangent basis at the given world position.
func orthonormalVaryings(pos, tangent, normal math32.Vector3) *vertex.Varyings {
	tn := tangent.Normal()
	nn := normal.Normal()
	return &vertex.Varyings{
		WorldPos:  pos,
		TexCoord:  math32.Vec2(0.5, 0.5),
		Normal:    nn,
		Tangent:   tn,
		Bitangent: nn.Cross(tn),
	}
}

func TestSpaceEquivalence(t *testing.T) {
	cases := []struct {
		name     string
		vr       *vertex.Varyings
		normalTS math32.Vector3
		lightPos math32.Vector3
		camPos   math32.Vector3
	}{
		{"axis aligned", orthonormalVaryings(math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 0, 1)),
			math32.Vec3(0, 0, 1), math32.Vec3(1, 2, 3), math32.Vec3(-1, 1, 4)},
		{"tilted basis", orthonormalVaryings(math32.Vec3(2, -1, 0.5), math32.Vec3(1, 1, 0), math32.Vec3(1, -1, 1)),
			math32.Vec3(0.2, -0.3, 0.9).Normal(), math32.Vec3(4, 4, 4), math32.Vec3(0, 5, -2)},
		{"grazing light", orthonormalVaryings(math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0), math32.Vec3(1, 0, 0)),
			math32.Vec3(0.1, 0.1, 0.98).Normal(), math32.Vec3(0.5, 10, 0.1), math32.Vec3(3, 0.2, 0.2)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, shininess := range []float32{SoftShininess, DefaultShininess} {
				world := ShadeTerms(WorldSpace, c.vr, c.normalTS, c.lightPos, c.camPos, shininess)
				tangent := ShadeTerms(TangentSpace, c.vr, c.normalTS, c.lightPos, c.camPos, shininess)
				assert.InDelta(t, float64(world.Diffuse), float64(tangent.Diffuse), 1.0e-5)
				assert.InDelta(t, float64(world.Specular), float64(tangent.Specular), 1.0e-5)
			}
		})
	}
}

func TestShadeTerms(t *testing.T) {
	// fragment at origin, normal +Z, light and camera straight ahead:
	// full diffuse and full specular
	vr := orthonormalVaryings(math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 0, 1))
	tm := ShadeTerms(WorldSpace, vr, math32.Vec3(0, 0, 1), math32.Vec3(0, 0, 5), math32.Vec3(0, 0, 5), DefaultShininess)
	assert.InDelta(t, 1, float64(tm.Diffuse), 1.0e-6)
	assert.InDelta(t, 1, float64(tm.Specular), 1.0e-6)

	// light behind the surface clamps to zero, not negative
	tm = ShadeTerms(WorldSpace, vr, math32.Vec3(0, 0, 1), math32.Vec3(0, 0, -5), math32.Vec3(0, 0, 5), DefaultShininess)
	assert.Equal(t, float32(0), tm.Diffuse)

	// higher shininess narrows the off-axis highlight
	offLight := math32.Vec3(3, 0, 5)
	soft := ShadeTerms(WorldSpace, vr, math32.Vec3(0, 0, 1), offLight, math32.Vec3(0, 0, 5), SoftShininess)
	sharp := ShadeTerms(WorldSpace, vr, math32.Vec3(0, 0, 1), offLight, math32.Vec3(0, 0, 5), DefaultShininess)
	assert.Less(t, sharp.Specular, soft.Specular)
}

func TestShade(t *testing.T) {
	mt := &Material{
		Color: texture.NewTexture2DUniform(math32.Vec4(1, 0.5, 0.25, 1)),
		// flat normal map: tangent-space +Z encoded as (0.5, 0.5, 1)
		Normal:    texture.NewTexture2DUniform(texture.EncodeNormal(math32.Vec3(0, 0, 1))),
		Shininess: DefaultShininess,
	}
	vr := orthonormalVaryings(math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 0, 1))
	lt := &Light{Pos: math32.Vec3(0, 0, 5)}

	out := Shade(WorldSpace, vr, mt, lt, math32.Vec3(0, 0, 5), 0.75)
	// alpha carries the per-draw immediate scale, not a lighting term
	assert.Equal(t, float32(0.75), out.W)
	// head-on: base*1 + specular*1
	assert.InDelta(t, 2.0, float64(out.X), 1.0e-5)
	assert.InDelta(t, 1.5, float64(out.Y), 1.0e-5)
	assert.InDelta(t, 1.25, float64(out.Z), 1.0e-5)

	// both spaces produce the same color for the same draw
	outTS := Shade(TangentSpace, vr, mt, lt, math32.Vec3(0, 0, 5), 0.75)
	assert.InDelta(t, float64(out.X), float64(outTS.X), 1.0e-5)
	assert.InDelta(t, float64(out.Y), float64(outTS.Y), 1.0e-5)
	assert.InDelta(t, float64(out.Z), float64(outTS.Z), 1.0e-5)
}

func TestBindings(t *testing.T) {
	vs := Bindings()
	supplied := map[string]bind.Kind{
		"Camera":        bind.Uniform,
		"ColorTexture":  bind.SampledTexture,
		"ColorSampler":  bind.Sampler,
		"NormalTexture": bind.SampledTexture,
		"NormalSampler": bind.Sampler,
		"Scale":         bind.PushConstant,
	}
	assert.NoError(t, vs.Validate(supplied))

	supplied["NormalTexture"] = bind.Uniform
	assert.Error(t, vs.Validate(supplied))
}
