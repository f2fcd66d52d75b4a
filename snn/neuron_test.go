// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "testing"

func TestNeuronsVarByNameMatchesVarByIndex(t *testing.T) {
	nr := NewNeurons(1)
	nr.Voltage[0] = -65
	nr.AvgFiring[0] = 0.5

	for idx, name := range NeuronVars {
		want, err := nr.VarByIndex(idx, 0)
		if err != nil {
			t.Fatalf("VarByIndex(%d): %v", idx, err)
		}
		got, err := nr.VarByName(name, 0)
		if err != nil {
			t.Fatalf("VarByName(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("VarByName(%q) = %v, want %v (VarByIndex(%d))", name, got, want, idx)
		}
	}

	if _, err := nr.VarByName("Bogus", 0); err == nil {
		t.Fatal("VarByName(\"Bogus\"): expected error, got nil")
	}
}

func TestSynapsesVarByNameMatchesVarByIndex(t *testing.T) {
	sy := NewSynapses(1)
	sy.Wt[0] = 10
	sy.MaxSynWt[0] = 10

	for idx, name := range SynapseVars {
		want, err := sy.VarByIndex(idx, 0)
		if err != nil {
			t.Fatalf("VarByIndex(%d): %v", idx, err)
		}
		got, err := sy.VarByName(name, 0)
		if err != nil {
			t.Fatalf("VarByName(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("VarByName(%q) = %v, want %v (VarByIndex(%d))", name, got, want, idx)
		}
	}

	if _, err := sy.VarByName("Bogus", 0); err == nil {
		t.Fatal("VarByName(\"Bogus\"): expected error, got nil")
	}
}
