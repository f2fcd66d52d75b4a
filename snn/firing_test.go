// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "testing"

func newSingleNeuronNetwork(t *testing.T) *Network {
	t.Helper()
	cfg := Config{
		MaxDelay:         1,
		NumN:             1,
		NumNReg:          1,
		NumNPois:         0,
		NumGroups:        1,
		MaxNumPreSynN:    0,
		MaxSpikesD1:      1000,
		MaxSpikesD2:      16,
		WithConductances: false,
		StdpScaleFactor:  1000,
		WtChangeDecay:    1,
		PartitionBufSize: 4,
		NWorkers:         1,
	}
	cfg.Decay.Defaults()
	groups := []GroupConfig{{Name: "A", StartN: 0, NumN: 1, MaxDelay: 1}}

	sy := NewSynapses(0)
	sy.Npre = []int32{0}
	sy.CumulativePre = []int32{0, 0}
	sy.Npost = []int32{0}
	sy.CumulativePost = []int32{0, 0}
	sy.GrpIds = []int32{0}
	sy.PostDelayInfo = make([]DelayRange, 1*2)

	net := NewNetwork(cfg, groups, sy)
	return net
}

// TestSingleNeuronSpikesWithin500Ticks is the firing half of spec
// section 8 scenario 1: a single regular neuron, no synaptic inputs,
// extCurrent=10pA, Izh (a,b,c,d)=(0.02,0.2,-65,8), v0=-70, u0=-14 must
// fire at least once within 500 ticks. The reset half is checked by
// TestFlushFiredResetsRegularNeuron.
func TestSingleNeuronSpikesWithin500Ticks(t *testing.T) {
	net := newSingleNeuronNetwork(t)
	defer net.Close()
	net.Neurons.SetDefaultIzh(0)
	net.Neurons.Voltage[0] = -70
	net.Neurons.Recovery[0] = -14
	net.Neurons.ExtCurrent[0] = 10

	for i := 0; i < 500; i++ {
		if err := net.Tick(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}

	if net.Neurons.NSpikeCnt[0] == 0 {
		t.Fatal("expected at least one spike within 500 ticks")
	}
}

// TestFlushFiredResetsRegularNeuron exercises the reset half of FIND_FIRING
// directly: when a regular neuron is flushed as fired, voltage must be
// set to Izh_c and recovery incremented by Izh_d (spec 4.2).
func TestFlushFiredResetsRegularNeuron(t *testing.T) {
	net := newSingleNeuronNetwork(t)
	defer net.Close()
	net.Neurons.SetDefaultIzh(0)
	net.Neurons.Voltage[0] = 35
	net.Neurons.Recovery[0] = -14

	net.flushFired([]int32{0}, net.Groups[0])

	if net.Neurons.Voltage[0] != -65 {
		t.Fatalf("Voltage = %v, want -65 (Izh_c)", net.Neurons.Voltage[0])
	}
	if net.Neurons.Recovery[0] != -14+8 {
		t.Fatalf("Recovery = %v, want %v", net.Neurons.Recovery[0], -14+8)
	}
	if net.Neurons.NSpikeCnt[0] != 1 {
		t.Fatalf("NSpikeCnt = %d, want 1", net.Neurons.NSpikeCnt[0])
	}
	if net.FiringD1.Count() != 1 {
		t.Fatalf("FiringD1.Count() = %d, want 1", net.FiringD1.Count())
	}
	if net.FiringD1.Table[0] != 0 {
		t.Fatalf("FiringD1.Table[0] = %d, want neuron 0", net.FiringD1.Table[0])
	}
}
