// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compute

import "github.com/GameHunter101/v4go/bind"

// Bindings returns the resource declaration for the elementwise scale
// stage: a read-only input buffer and a writable output buffer with
// disjoint index ownership.
func Bindings() *bind.Vars {
	vs := &bind.Vars{}
	vs.Add("Input", bind.StorageRead, 0, bind.ComputeShader)
	vs.Add("Output", bind.StorageReadWrite, 0, bind.ComputeShader)
	return vs
}
