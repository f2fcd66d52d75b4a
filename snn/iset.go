// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "sync/atomic"

// ISet is the incoming-spike bit grid of spec section 3: a pitched
// 2-D grid of 32-bit words indexed by (wordRow, postNeuron), with
// ISetLength = ceil(maxNumPreSynN/32) rows. Setting bit k of row j for
// post neuron p means "presynaptic slot j*32+k of p received a spike
// this tick". Writers (CURRENT_UPDATE_D1/D2) use atomic-OR, since the
// operation is commutative and idempotent across racing blocks;
// CONDUCTANCE_UPDATE is the single-threaded-per-post-neuron reader and
// clearer, so clearing itself is race-free (spec 4.4, 4.3, 9).
type ISet struct {
	words []uint32 // flat, row-major: words[row*pitch+post]
	pitch int32    // number of post-neurons (row stride)
	rows  int32    // ISetLength
}

// NewISet allocates a zeroed grid of rows x pitch words.
func NewISet(rows, pitch int32) *ISet {
	return &ISet{
		words: make([]uint32, int64(rows)*int64(pitch)),
		pitch: pitch,
		rows:  rows,
	}
}

// Rows returns ISetLength.
func (is *ISet) Rows() int32 { return is.rows }

// index computes the flat offset of (row, post), per the Design Notes
// caveat: the writer (setFiringBitSynapses-equivalent in delivery.go)
// and this reader must agree bit-for-bit on how a synaptic slot maps to
// (row, bitInWord) -- here row = slot/32, bitInWord = slot%32, and both
// delivery.go and conductance.go use exactly this mapping.
func (is *ISet) index(row, post int32) int64 {
	return int64(row)*int64(is.pitch) + int64(post)
}

// AtomicOrBit sets bit (slot%32) of row (slot/32) for post, atomically.
// This is the single write CURRENT_UPDATE_D1/D2 performs into I_set.
func (is *ISet) AtomicOrBit(slot, post int32) {
	row := slot / 32
	bit := uint32(slot % 32)
	p := &is.words[is.index(row, post)]
	mask := uint32(1) << bit
	for {
		old := atomic.LoadUint32(p)
		if old&mask != 0 {
			return // already set; OR is idempotent, nothing to do
		}
		if atomic.CompareAndSwapUint32(p, old, old|mask) {
			return
		}
	}
}

// Word returns the raw word at (row, post) without clearing it.
func (is *ISet) Word(row, post int32) uint32 {
	return is.words[is.index(row, post)]
}

// ClearWord zeroes the word at (row, post). CONDUCTANCE_UPDATE calls
// this immediately after consuming a nonzero word, single-threaded per
// post-neuron, so no atomic is needed here (spec 4.4).
func (is *ISet) ClearWord(row, post int32) {
	is.words[is.index(row, post)] = 0
}

// AllZero reports whether every word of the grid is zero -- the
// post-condition CONDUCTANCE_UPDATE is required to establish for the
// next tick's CURRENT_UPDATE_D1/D2 (spec section 3 invariants, section 8
// testable properties).
func (is *ISet) AllZero() bool {
	for _, w := range is.words {
		if w != 0 {
			return false
		}
	}
	return true
}
