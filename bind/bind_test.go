// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testVars() *Vars {
	vs := &Vars{}
	vs.Add("Camera", Uniform, 0, VertexShader|FragmentShader)
	vs.Add("ColorTexture", SampledTexture, 1, FragmentShader)
	vs.Add("ColorSampler", Sampler, 1, FragmentShader)
	vs.Add("Scale", PushConstant, 2, FragmentShader)
	return vs
}

func TestBindingAllocation(t *testing.T) {
	vs := testVars()
	// bindings allocate sequentially within each group
	assert.Equal(t, 0, vs.Find("Camera").Binding)
	assert.Equal(t, 0, vs.Find("ColorTexture").Binding)
	assert.Equal(t, 1, vs.Find("ColorSampler").Binding)
	assert.Equal(t, 0, vs.Find("Scale").Binding)
	assert.Nil(t, vs.Find("Missing"))
}

func TestValidate(t *testing.T) {
	vs := testVars()
	good := map[string]Kind{
		"Camera":       Uniform,
		"ColorTexture": SampledTexture,
		"ColorSampler": Sampler,
		"Scale":        PushConstant,
	}
	assert.NoError(t, vs.Validate(good))
}

func TestValidateMissing(t *testing.T) {
	vs := testVars()
	err := vs.Validate(map[string]Kind{"Camera": Uniform})
	assert.ErrorContains(t, err, `missing resource "ColorSampler"`)
	assert.ErrorContains(t, err, `missing resource "ColorTexture"`)
	assert.ErrorContains(t, err, `missing resource "Scale"`)
}

func TestValidateKindMismatch(t *testing.T) {
	vs := testVars()
	err := vs.Validate(map[string]Kind{
		"Camera":       StorageRead,
		"ColorTexture": SampledTexture,
		"ColorSampler": Sampler,
		"Scale":        PushConstant,
	})
	assert.ErrorContains(t, err, `resource "Camera" is StorageRead, want Uniform`)
}

func TestValidateUndeclared(t *testing.T) {
	vs := testVars()
	err := vs.Validate(map[string]Kind{
		"Camera":       Uniform,
		"ColorTexture": SampledTexture,
		"ColorSampler": Sampler,
		"Scale":        PushConstant,
		"Rogue":        Uniform,
	})
	assert.ErrorContains(t, err, `resource "Rogue" is not declared`)
}

func TestStringDoc(t *testing.T) {
	doc := testVars().StringDoc()
	assert.Contains(t, doc, "Group: 0")
	assert.Contains(t, doc, "Group: 1")
	assert.Contains(t, doc, "Camera: Uniform @group(0) @binding(0) [vertex|fragment]")
	assert.Contains(t, doc, "Scale: PushConstant @group(2) @binding(0) [fragment]")
}
