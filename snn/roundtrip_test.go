// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "testing"

// TestInTestingFreezesWeights is spec section 8's first round-trip
// property: running ticks with sim_in_testing=true leaves wt and
// wtChange unchanged, even when a group's own STDP switches are left
// on and its presynaptic partner fires repeatedly -- InTesting must
// override per-group WithSTDP, not merely stand in for it being off.
func TestInTestingFreezesWeights(t *testing.T) {
	net, sy := newChainNetwork(t, 1)
	defer net.Close()
	net.Cfg.InTesting = true
	net.Cfg.StdpScaleFactor = 10

	b := net.Groups[1]
	b.Cfg.WithSTDP = true
	b.Cfg.WithESTDP = true
	b.Cfg.EParams = STDPParams{Curve: ExpCurve, Alpha: 0.01, TauInv: 0.05}

	wantWt := sy.Wt[0]
	wantWtChange := sy.WtChange[0]

	for ms := int32(0); ms < 50; ms++ {
		if ms%5 == 0 {
			net.Neurons.Voltage[0] = 30
		}
		if err := net.Tick(); err != nil {
			t.Fatalf("tick %d: %v", ms, err)
		}
	}
	net.UpdateWeights()

	if sy.Wt[0] != wantWt {
		t.Fatalf("Wt = %v, want unchanged %v", sy.Wt[0], wantWt)
	}
	if sy.WtChange[0] != wantWtChange {
		t.Fatalf("WtChange = %v, want unchanged %v", sy.WtChange[0], wantWtChange)
	}
}

// newSTPNetwork builds a single regular, non-Poisson, STP-enabled
// neuron with the given maxDelay, for exercising decayStp's ring
// buffer in isolation from any spiking.
func newSTPNetwork(t *testing.T, maxDelay int32) *Network {
	t.Helper()
	cfg := Config{
		MaxDelay:         maxDelay,
		NumN:             1,
		NumNReg:          1,
		NumGroups:        1,
		MaxSpikesD1:      16,
		MaxSpikesD2:      16,
		StdpScaleFactor:  1000,
		WtChangeDecay:    1,
		PartitionBufSize: 4,
		NWorkers:         1,
	}
	cfg.Decay.Defaults()
	groups := []GroupConfig{{
		Name: "A", StartN: 0, NumN: 1, MaxDelay: maxDelay,
		WithSTP: true,
		STP:     STPParams{U: 0.2, TauUInv: 0.1, TauXInv: 0.05},
	}}

	sy := NewSynapses(0)
	sy.Npre = []int32{0}
	sy.CumulativePre = []int32{0, 0}
	sy.Npost = []int32{0}
	sy.CumulativePost = []int32{0, 0}
	sy.GrpIds = []int32{0}
	sy.PostDelayInfo = make([]DelayRange, 1*(maxDelay+1))

	net := NewNetwork(cfg, groups, sy)
	net.Neurons.SetDefaultIzh(0)
	return net
}

// TestSTPDecayMatchesIndependentFormula is spec section 8's second
// round-trip property: with no spikes, stpAndDecay's ring-buffer
// carry-forward over maxDelay+1 ticks must match the independent,
// closed-form recurrence stpu *= (1-tauUInv) and stpx += (1-stpx)*
// tauXInv applied directly, tick by tick.
func TestSTPDecayMatchesIndependentFormula(t *testing.T) {
	const maxDelay = int32(5)
	net := newSTPNetwork(t, maxDelay)
	defer net.Close()

	stp := net.Groups[0].Cfg.STP
	stride := maxDelay + 1

	u0, x0 := float32(0.6), float32(0.4)
	// stpMinus for tick 0 is (0-1) mod stride = stride-1; seed it there.
	net.StpU[stride-1] = u0
	net.StpX[stride-1] = x0

	wantU, wantX := u0, x0
	const tol = 1e-5
	for k := int32(0); k <= maxDelay; k++ {
		net.SimTime = k
		net.stpAndDecay()

		wantU *= 1 - stp.TauUInv
		wantX += (1 - wantX) * stp.TauXInv

		gotU := net.StpU[k%stride]
		gotX := net.StpX[k%stride]
		if d := gotU - wantU; d > tol || d < -tol {
			t.Fatalf("tick %d: stpU = %v, want %v", k, gotU, wantU)
		}
		if d := gotX - wantX; d > tol || d < -tol {
			t.Fatalf("tick %d: stpX = %v, want %v", k, gotX, wantX)
		}
	}
}
