// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compute provides the data-parallel dispatch model shared by
// the compute and post-process stages: one logical invocation per index
// in a flat domain, with no ordering, shared mutable state, or
// synchronization between invocations. Kernels must write only to
// outputs they own (invocation i owns output index i exclusively).
package compute

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkgroupSize is the number of invocations grouped into one
// unit of CPU scheduling. It is a throughput knob, never a semantic
// one: kernels may not observe workgroup boundaries.
const DefaultWorkgroupSize = 64

// Kernel is one invocation of an elementwise stage. It must not
// assume any invocation order and must not communicate with sibling
// invocations.
type Kernel func(i int)

// Dispatch runs the kernel once for each index in [0, n), in parallel,
// using [DefaultWorkgroupSize] invocations per scheduling unit. It
// returns once every invocation has completed.
func Dispatch(n int, kern Kernel) {
	DispatchWorkgroups(n, DefaultWorkgroupSize, kern)
}

// DispatchWorkgroups is [Dispatch] with an explicit workgroup size.
func DispatchWorkgroups(n, workgroupSize int, kern Kernel) {
	if n <= 0 {
		return
	}
	if workgroupSize <= 0 {
		workgroupSize = DefaultWorkgroupSize
	}
	g := errgroup.Group{}
	g.SetLimit(runtime.GOMAXPROCS(0))
	for start := 0; start < n; start += workgroupSize {
		start := start
		end := min(start+workgroupSize, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				kern(i)
			}
			return nil
		})
	}
	g.Wait()
}

// Scale is the elementwise scale stage: dst[i] = src[i] * factor for
// every index. The buffer lengths must match; a mismatch is a fatal
// configuration error reported at dispatch time, never checked
// per element.
func Scale(dst, src []float32, factor float32) error {
	if len(dst) != len(src) {
		return fmt.Errorf("compute.Scale: dispatch size mismatch: output length %d != input length %d", len(dst), len(src))
	}
	Dispatch(len(src), func(i int) {
		dst[i] = src[i] * factor
	})
	return nil
}
