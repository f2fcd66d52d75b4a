// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "testing"

// TestFireUpdateOverflowD1 is spec section 8 scenario 4: with
// maxSpikesD1=4, forcing 5 D1 neurons to fire on one tick must return
// FIRE_UPDATE_OVERFLOW_D1 and the tick must be reported failed.
func TestFireUpdateOverflowD1(t *testing.T) {
	const n = 5
	cfg := Config{
		MaxDelay:      1,
		NumN:          n,
		NumNReg:       n,
		NumGroups:     1,
		MaxNumPreSynN: 0,
		MaxSpikesD1:   4,
		MaxSpikesD2:   16,

		StdpScaleFactor:  1000,
		WtChangeDecay:    1,
		PartitionBufSize: 8,
		NWorkers:         1,
	}
	cfg.Decay.Defaults()
	groups := []GroupConfig{{Name: "G", StartN: 0, NumN: n, MaxDelay: 1}}

	sy := NewSynapses(0)
	sy.Npre = make([]int32, n)
	sy.CumulativePre = make([]int32, n+1)
	sy.Npost = make([]int32, n)
	sy.CumulativePost = make([]int32, n+1)
	sy.GrpIds = make([]int32, n)
	sy.PostDelayInfo = make([]DelayRange, n*2)

	net := NewNetwork(cfg, groups, sy)
	defer net.Close()
	for i := int32(0); i < n; i++ {
		net.Neurons.SetDefaultIzh(i)
		net.Neurons.Voltage[i] = 30
	}

	err := net.Tick()
	if err == nil {
		t.Fatal("expected FIRE_UPDATE_OVERFLOW_D1, got nil error")
	}
	te, ok := err.(*TickError)
	if !ok {
		t.Fatalf("expected *TickError, got %T", err)
	}
	if te.Code != ErrFireUpdateOverflowD1 {
		t.Fatalf("Code = %v, want ErrFireUpdateOverflowD1", te.Code)
	}
}

// TestConductanceUpdateClearsISet checks the section 8 invariant that
// every I_set word is zero after CONDUCTANCE_UPDATE.
func TestConductanceUpdateClearsISet(t *testing.T) {
	net, _ := newChainNetwork(t, 3)
	defer net.Close()

	net.SimTime = 100
	net.Neurons.Voltage[0] = 30
	net.stpAndDecay()
	net.findFiring()
	net.updateTimeTable()

	net.SimTime = 103
	net.currentUpdateD2()
	if net.ISet.AllZero() {
		t.Fatal("expected a set bit in I_set before CONDUCTANCE_UPDATE")
	}
	net.conductanceUpdate()
	if !net.ISet.AllZero() {
		t.Fatal("expected I_set to be all zero after CONDUCTANCE_UPDATE")
	}
}

// TestVoltageClamp checks the section 8 invariant voltage in [-90,30]
// after NEURON_STATE_UPDATE, for a neuron driven far outside that range
// by a large external current.
func TestVoltageClamp(t *testing.T) {
	net := newSingleNeuronNetwork(t)
	defer net.Close()
	net.Neurons.SetDefaultIzh(0)
	net.Neurons.Voltage[0] = -70
	net.Neurons.Recovery[0] = -14
	net.Neurons.ExtCurrent[0] = -1e6 // drive voltage hard toward -90

	net.integrateNeuron(0, net.Groups[0])

	if net.Neurons.Voltage[0] < -90 || net.Neurons.Voltage[0] > 30 {
		t.Fatalf("Voltage = %v, want within [-90, 30]", net.Neurons.Voltage[0])
	}
}
