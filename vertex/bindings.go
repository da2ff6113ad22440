// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vertex

import "github.com/GameHunter101/v4go/bind"

// Bindings returns the resource declaration for the full-attribute
// transform mode: the shared camera uniform plus the per-instance
// transform delivered as four attribute vectors.
func Bindings() *bind.Vars {
	vs := &bind.Vars{}
	vs.Add("Camera", bind.Uniform, 0, bind.VertexShader|bind.FragmentShader)
	vs.Add("InstanceTransform", bind.InstanceAttribute, 1, bind.VertexShader)
	return vs
}
