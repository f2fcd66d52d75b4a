// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

//gosl: start bitscan

// lowestSetBit8 maps a byte to the 0-based index of its lowest set bit,
// or 8 if the byte is zero. CONDUCTANCE_UPDATE enumerates the set bits
// of an I_set word byte by byte through this table rather than a
// bit-by-bit loop (Design Notes: "the 256-entry table returning the
// least-set-bit index per byte is a lookup-table strategy; it can be
// replaced by a hardware count-trailing-zeros instruction with
// equivalent semantics").
var lowestSetBit8 [256]uint8

func init() {
	for b := 0; b < 256; b++ {
		idx := uint8(8)
		for i := 0; i < 8; i++ {
			if b&(1<<uint(i)) != 0 {
				idx = uint8(i)
				break
			}
		}
		lowestSetBit8[b] = idx
	}
}

// ForEachSetBit calls fn once per set bit of w, in increasing bit-index
// order, passing the bit index (0-31). It scans w byte by byte using
// lowestSetBit8, clearing the lowest set bit of the current byte after
// each call, which is the CONDUCTANCE_UPDATE access pattern (spec 4.4
// and the Design Notes bit-scanning strategy).
func ForEachSetBit(w uint32, fn func(bit int)) {
	for byteIdx := 0; byteIdx < 4; byteIdx++ {
		b := uint8(w >> (8 * uint(byteIdx)))
		for b != 0 {
			lo := lowestSetBit8[b]
			fn(byteIdx*8 + int(lo))
			b &^= 1 << lo
		}
	}
}

//gosl: end bitscan
