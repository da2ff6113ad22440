// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lighting

import "github.com/GameHunter101/v4go/bind"

// Bindings returns the resource declaration for the lighting fragment
// stage: the shared camera uniform, the diffuse and normal-map texture
// pairs, and the per-draw immediate scale that feeds the output alpha.
func Bindings() *bind.Vars {
	vs := &bind.Vars{}
	vs.Add("Camera", bind.Uniform, 0, bind.VertexShader|bind.FragmentShader)
	vs.Add("ColorTexture", bind.SampledTexture, 1, bind.FragmentShader)
	vs.Add("ColorSampler", bind.Sampler, 1, bind.FragmentShader)
	vs.Add("NormalTexture", bind.SampledTexture, 1, bind.FragmentShader)
	vs.Add("NormalSampler", bind.Sampler, 1, bind.FragmentShader)
	vs.Add("Scale", bind.PushConstant, 2, bind.FragmentShader)
	return vs
}
