// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import (
	"math"
	"sync/atomic"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Clamp restricts v to [lo, hi], used by UPDATE_WEIGHTS' weight clamp
// (spec 4.9).
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// atomicAddFloat32 atomically adds delta to *p via a compare-and-swap
// loop over the bit pattern, the float32 equivalent of atomic.Int32.Add.
// Dopamine concentration updates are the one place this engine needs an
// atomic float add (spec 4.3 step 1: "atomically add 0.04 to post-group's
// dopamine concentration"); everywhere else concurrent float writes are
// either accepted as lossy (wtChange) or funneled through atomic.Uint32
// bit ops directly (I_set).
func atomicAddFloat32(p *float32, delta float32) {
	addr := (*uint32)(unsafe.Pointer(p))
	for {
		old := atomic.LoadUint32(addr)
		newV := math.Float32bits(math.Float32frombits(old) + delta)
		if atomic.CompareAndSwapUint32(addr, old, newV) {
			return
		}
	}
}
