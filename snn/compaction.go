// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

// updateTimeTable is UPDATE_TIME_TABLE, the kernel FIND_FIRING's flush
// leaves for the host to run next: it stamps this tick's running spike
// count into both time tables at index (ms+maxDelay+1), which is what
// makes TimeTable[ms+maxDelay+1]-TimeTable[ms+maxDelay] equal this
// tick's spike count (spec section 3, 4.2).
func (n *Network) updateTimeTable() {
	ms := n.SimTime % 1000
	idx := ms + n.Cfg.MaxDelay + 1
	n.FiringD1.TimeTable[idx] = n.FiringD1.Count()
	n.FiringD2.TimeTable[idx] = n.FiringD2.Count()
}

// SecondBoundary is the once-per-1000-ticks compaction pass of spec
// 4.8, run after tick 999 of every second (i.e. when (SimTime+1)%1000
// == 0): it carries forward the tail of firingTableD{1,2} whose
// delivery windows still reach into the next second, rebases the
// pre-second region of each time table to match, and rolls the
// per-second spike counters into the lifetime totals.
func (n *Network) SecondBoundary() {
	n.compactTable(n.FiringD1)
	n.compactTable(n.FiringD2)

	n.FiringD1.TimeTable[n.Cfg.MaxDelay] = 0

	n.spikeCountD1 += n.spikeCountD1Sec
	n.spikeCountD2 += n.spikeCountD2Sec
	n.spikeCountD1Sec = 0
	n.spikeCountD2Sec = n.FiringD2.TimeTable[n.Cfg.MaxDelay]
}

// compactTable applies spec 4.8 steps 1-2 to one firing table: copy the
// carry-over spike window to the front of Table, rebase the pre-second
// region of TimeTable to the new layout, and rewind the tail to the
// carried count.
func (n *Network) compactTable(ft *FiringTable) {
	maxDelay := n.Cfg.MaxDelay
	carryStart := ft.TimeTable[999]
	carryEnd := ft.TimeTable[999+maxDelay+1]
	carryLen := carryEnd - carryStart
	if carryLen > 0 {
		copy(ft.Table[0:carryLen], ft.Table[carryStart:carryEnd])
	}
	base := ft.TimeTable[1000]
	for i := int32(1); i <= maxDelay; i++ {
		ft.TimeTable[i] = ft.TimeTable[1000+i] - base
	}
	ft.TimeTable[0] = 0
	ft.ResetTail(carryLen)
}

// SpikeCounts returns the lifetime D1 and D2 spike totals accumulated
// across every completed second boundary (spec section 8's "Sum of
// per-neuron nSpikeCnt increments" invariant is checked against these).
func (n *Network) SpikeCounts() (d1, d2 int32) {
	return n.spikeCountD1, n.spikeCountD2
}
