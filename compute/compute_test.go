// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compute

import (
	"sync/atomic"
	"testing"

	"github.com/GameHunter101/v4go/bind"
	"github.com/stretchr/testify/assert"
)

func TestScaleReference(t *testing.T) {
	// the reference dispatch: 8 elements, factor 2, exact results
	src := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	dst := make([]float32, 8)
	assert.NoError(t, Scale(dst, src, 2))
	assert.Equal(t, []float32{2, 4, 6, 8, 10, 12, 14, 16}, dst)
}

func TestScaleSizeMismatch(t *testing.T) {
	src := []float32{1, 2, 3}
	dst := make([]float32, 4)
	err := Scale(dst, src, 2)
	assert.ErrorContains(t, err, "size mismatch")
}

func TestScaleEmpty(t *testing.T) {
	assert.NoError(t, Scale(nil, nil, 2))
}

func TestDispatchCoversEveryIndex(t *testing.T) {
	const n = 10000
	hits := make([]int32, n)
	Dispatch(n, func(i int) {
		atomic.AddInt32(&hits[i], 1)
	})
	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d ran %d times", i, h)
		}
	}
}

func TestDispatchWorkgroups(t *testing.T) {
	// workgroup size is a scheduling knob, not a semantic one
	for _, wg := range []int{1, 3, 64, 100000} {
		var total atomic.Int64
		DispatchWorkgroups(1000, wg, func(i int) {
			total.Add(int64(i))
		})
		assert.Equal(t, int64(999*1000/2), total.Load(), "workgroup size %d", wg)
	}
}

func TestBindings(t *testing.T) {
	vs := Bindings()
	assert.NoError(t, vs.Validate(map[string]bind.Kind{
		"Input":  bind.StorageRead,
		"Output": bind.StorageReadWrite,
	}))
	// a read-only buffer where the stage writes is a binding mismatch
	assert.Error(t, vs.Validate(map[string]bind.Kind{
		"Input":  bind.StorageRead,
		"Output": bind.StorageRead,
	}))
}
