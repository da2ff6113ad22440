// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package postfx

import "github.com/GameHunter101/v4go/bind"

// Bindings returns the resource declaration for the post-process
// stages: the previously rendered scene color texture and its sampler.
func Bindings() *bind.Vars {
	vs := &bind.Vars{}
	vs.Add("SceneTexture", bind.SampledTexture, 0, bind.FragmentShader)
	vs.Add("SceneSampler", bind.Sampler, 0, bind.FragmentShader)
	return vs
}
