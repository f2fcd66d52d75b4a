// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "testing"

// TestWeightClampInhibitory is spec section 8 scenario 6: an inhibitory
// synapse with maxSynWt=-20, wt=-19.5, and a negative wtChange that
// would push wt to -25 must clamp to -20 after UPDATE_WEIGHTS.
func TestWeightClampInhibitory(t *testing.T) {
	net, sy := newChainNetwork(t, 1)
	defer net.Close()

	net.Cfg.StdpScaleFactor = 1
	sy.Wt[0] = -19.5
	sy.MaxSynWt[0] = -20
	sy.WtChange[0] = -5.5 // eff = stdpScaleFactor * wtChange = -5.5

	net.updateWeightsFor(1, net.Groups[1])

	if sy.Wt[0] != -20 {
		t.Fatalf("Wt = %v, want -20 (clamped)", sy.Wt[0])
	}
}

// TestWeightClampExcitatory mirrors the scenario for the excitatory
// side: wt must never exceed MaxSynWt.
func TestWeightClampExcitatory(t *testing.T) {
	net, sy := newChainNetwork(t, 1)
	defer net.Close()

	net.Cfg.StdpScaleFactor = 1
	sy.Wt[0] = 9.5
	sy.MaxSynWt[0] = 10
	sy.WtChange[0] = 5

	net.updateWeightsFor(1, net.Groups[1])

	if sy.Wt[0] != 10 {
		t.Fatalf("Wt = %v, want 10 (clamped)", sy.Wt[0])
	}
}

// TestUpdateWeightsSkipsFixedInputWts checks that a presynaptic group
// with FixedInputWts excludes its outgoing synapses from UPDATE_WEIGHTS
// entirely (spec 4.9).
func TestUpdateWeightsSkipsFixedInputWts(t *testing.T) {
	net, sy := newChainNetwork(t, 1)
	defer net.Close()

	net.Groups[0].Cfg.FixedInputWts = true
	net.Cfg.StdpScaleFactor = 1
	sy.Wt[0] = 5
	sy.WtChange[0] = 2

	net.updateWeightsFor(1, net.Groups[1])

	if sy.Wt[0] != 5 {
		t.Fatalf("Wt = %v, want unchanged 5 (FixedInputWts)", sy.Wt[0])
	}
}
