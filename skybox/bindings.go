// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skybox

import "github.com/GameHunter101/v4go/bind"

// Bindings returns the resource declaration for the skybox fragment
// stage: the shared camera uniform and the environment cube texture
// with its sampler.
func Bindings() *bind.Vars {
	vs := &bind.Vars{}
	vs.Add("Camera", bind.Uniform, 0, bind.VertexShader|bind.FragmentShader)
	vs.Add("EnvironmentTexture", bind.SampledTexture, 1, bind.FragmentShader)
	vs.Add("EnvironmentSampler", bind.Sampler, 1, bind.FragmentShader)
	return vs
}
