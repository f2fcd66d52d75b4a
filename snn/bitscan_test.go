// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "testing"

func TestForEachSetBit(t *testing.T) {
	var got []int
	ForEachSetBit(0, func(bit int) { got = append(got, bit) })
	if len(got) != 0 {
		t.Fatalf("zero word: expected no bits, got %v", got)
	}

	got = nil
	ForEachSetBit(0b1000_0000_0000_0000_0000_0000_0000_0001, func(bit int) { got = append(got, bit) })
	want := []int{0, 31}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got = nil
	ForEachSetBit(0xFF, func(bit int) { got = append(got, bit) })
	for i := 0; i < 8; i++ {
		if got[i] != i {
			t.Fatalf("expected consecutive bits 0-7, got %v", got)
		}
	}
}

func TestLowestSetBit8(t *testing.T) {
	if lowestSetBit8[0] != 8 {
		t.Fatalf("lowestSetBit8[0] = %d, want 8", lowestSetBit8[0])
	}
	if lowestSetBit8[0b00000100] != 2 {
		t.Fatalf("lowestSetBit8[4] = %d, want 2", lowestSetBit8[0b00000100])
	}
	if lowestSetBit8[1] != 0 {
		t.Fatalf("lowestSetBit8[1] = %d, want 0", lowestSetBit8[1])
	}
}
