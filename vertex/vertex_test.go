// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vertex

import (
	"testing"

	"github.com/GameHunter101/v4go/bind"
	"github.com/GameHunter101/v4go/camera"
	"github.com/GameHunter101/v4go/math32"
	"github.com/stretchr/testify/assert"
)

// identityCamera returns a camera whose view-projection is the identity.
func identityCamera(t *testing.T) *camera.Camera {
	t.Helper()
	id := math32.Identity4()
	cam, err := camera.New(&id, &id, math32.Vec3(0, 0, 0))
	assert.NoError(t, err)
	return cam
}

func TestTransformIdentityPassThrough(t *testing.T) {
	cam := identityCamera(t)
	at := &Attributes{
		Position: math32.Vec3(0.25, -0.5, 0.75),
		TexCoord: math32.Vec2(0.1, 0.9),
		Normal:   math32.Vec3(0, 0, 1),
	}

	vr := Transform(at, IdentityInstance(), cam)
	assert.Equal(t, math32.Vec4(0.25, -0.5, 0.75, 1), vr.ClipPos)
	assert.Equal(t, at.Position, vr.WorldPos)
	assert.Equal(t, at.TexCoord, vr.TexCoord)

	// nil instance means identity
	vr = Transform(at, nil, cam)
	assert.Equal(t, math32.Vec4(0.25, -0.5, 0.75, 1), vr.ClipPos)
}

func TestTransformInstance(t *testing.T) {
	cam := identityCamera(t)
	inst := &Instance{Cols: [4]math32.Vector4{
		math32.Vec4(2, 0, 0, 0),
		math32.Vec4(0, 2, 0, 0),
		math32.Vec4(0, 0, 2, 0),
		math32.Vec4(1, 2, 3, 1),
	}}
	at := &Attributes{
		Position: math32.Vec3(1, 1, 1),
		Normal:   math32.Vec3(0, 0, 1),
		Tangent:  math32.Vec3(1, 0, 0),
	}

	vr := Transform(at, inst, cam)
	assert.Equal(t, math32.Vec3(3, 4, 5), vr.WorldPos)
	assert.Equal(t, math32.Vec4(3, 4, 5, 1), vr.ClipPos)

	// uniform scale leaves renormalized directions exact, and
	// translation does not leak into them
	assert.InDelta(t, 1, float64(vr.Normal.Length()), 1.0e-6)
	assert.Equal(t, math32.Vec3(0, 0, 1), vr.Normal)
	assert.Equal(t, math32.Vec3(1, 0, 0), vr.Tangent)
}

func TestTransformPoint(t *testing.T) {
	model := math32.Translate3D(1, 0, 0)
	out := TransformPoint(&model, math32.Vec3(1, 2, 3))
	assert.Equal(t, math32.Vec4(2, 2, 3, 1), out)
}

func TestTransformCamera(t *testing.T) {
	pos := math32.Vec3(0, 0, 2)
	view := camera.ViewMat(pos, math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0))
	var proj math32.Matrix4
	proj.SetPerspective(45, 1, 0.01, 100)
	cam, err := camera.New(view, &proj, pos)
	assert.NoError(t, err)

	at := &Attributes{Position: math32.Vec3(0, 0, 0)}
	vr := Transform(at, nil, cam)
	// clip-space W carries the view depth; it is never silently 1
	assert.InDelta(t, 2, float64(vr.ClipPos.W), 1.0e-5)
	ndc := vr.ClipPos.PerspDiv()
	assert.InDelta(t, 0, float64(ndc.X), 1.0e-6)
	assert.InDelta(t, 0, float64(ndc.Y), 1.0e-6)
}

func TestBindings(t *testing.T) {
	vs := Bindings()
	assert.NoError(t, vs.Validate(map[string]bind.Kind{
		"Camera":            bind.Uniform,
		"InstanceTransform": bind.InstanceAttribute,
	}))
	err := vs.Validate(map[string]bind.Kind{"Camera": bind.Uniform})
	assert.ErrorContains(t, err, "InstanceTransform")
}
