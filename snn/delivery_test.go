// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "testing"

// TestOneSynapseChainDelay is spec section 8 scenario 2: A->B, delay=3,
// wt=10, excitatory, CUBA, no STDP. Spiking A at tick 100 must raise
// B's current at tick 103 by 10 and not at ticks 101, 102, 104.
//
// CUBA's Current is a transient, single-tick accumulator --
// NEURON_STATE_UPDATE zeroes it again within the same tick after using
// it to integrate voltage (spec 4.5) -- so this test drives the kernel
// sequence manually, the same order Tick uses, stopping after
// CONDUCTANCE_UPDATE each tick to observe Current before it is
// consumed and cleared.
func TestOneSynapseChainDelay(t *testing.T) {
	net, _ := newChainNetwork(t, 3)
	defer net.Close()

	observed := map[int32]float32{}
	for ms := int32(0); ms <= 104; ms++ {
		net.SimTime = ms
		if ms == 100 {
			net.Neurons.Voltage[0] = 30
		}
		net.stpAndDecay()
		net.findFiring()
		net.updateTimeTable()
		net.currentUpdateD2()
		net.currentUpdateD1()
		net.conductanceUpdate()

		if ms >= 101 && ms <= 104 {
			observed[ms] = net.Neurons.Current[1]
		}

		net.neuronStateUpdate()
		net.groupStateUpdate()
	}

	if err := net.tickErr.Load(); err != nil {
		t.Fatalf("unexpected tick error: %v", err)
	}

	for _, ms := range []int32{101, 102, 104} {
		if observed[ms] != 0 {
			t.Fatalf("tick %d: Current[1] = %v, want 0", ms, observed[ms])
		}
	}
	if observed[103] != 10 {
		t.Fatalf("tick 103: Current[1] = %v, want 10", observed[103])
	}
}
