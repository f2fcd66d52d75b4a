// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "sync/atomic"

// FiringTable is one of the two compact firing logs of spec section 3
// (D1 for unit-delay groups, D2 for multi-delay groups): a flat array of
// fired neuron ids plus a per-ms index table. TimeTable[ms+maxDelay+1] -
// TimeTable[ms+maxDelay] is the spike count for tick ms of the current
// second; TimeTable[0] is always 0.
type FiringTable struct {
	Table     []int32 // fired neuron ids, append-only within a second
	TimeTable []int32 // length 1000+maxDelay+2

	tailAtomic atomic.Int32 // next free slot in Table, reserved atomically per chunk
	cap        int32
}

// NewFiringTable allocates a table with the given per-second capacity
// and a time table sized for maxDelay.
func NewFiringTable(capacity, maxDelay int32) *FiringTable {
	ft := &FiringTable{
		Table:     make([]int32, capacity),
		TimeTable: make([]int32, 1002+maxDelay),
		cap:       capacity,
	}
	return ft
}

// Reserve atomically reserves n contiguous slots at the tail of Table
// and returns the starting index, or (0, false) if that would exceed
// capacity -- the firing-table overflow condition of spec section 3/4.2.
func (ft *FiringTable) Reserve(n int32) (int32, bool) {
	start := ft.tailAtomic.Add(n) - n
	if start+n > ft.cap {
		return 0, false
	}
	return start, true
}

// Count returns the current tail position (total spikes recorded since
// the last reset/compaction).
func (ft *FiringTable) Count() int32 { return ft.tailAtomic.Load() }

// ResetTail resets the write cursor to pos (used by second-boundary
// compaction to rewind after copying forward the D2 carry-over).
func (ft *FiringTable) ResetTail(pos int32) { ft.tailAtomic.Store(pos) }
