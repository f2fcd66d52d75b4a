// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "testing"

// newChainNetwork builds the smallest possible network exercised by
// several tests: two regular neurons, A (id 0) feeding B (id 1)
// through a single excitatory, CUBA, non-plastic synapse at the given
// delay. It returns the Network and the Synapses so tests can poke at
// connectivity fields (SynSpikeTime, Wt, ...) directly.
func newChainNetwork(t *testing.T, delay int32) (*Network, *Synapses) {
	t.Helper()

	cfg := Config{
		MaxDelay:         delay,
		NumN:             2,
		NumNReg:          2,
		NumNPois:         0,
		NumGroups:        2,
		MaxNumPreSynN:    1,
		MaxSpikesD1:      16,
		MaxSpikesD2:      16,
		WithConductances: false,
		StdpScaleFactor:  1000,
		WtChangeDecay:    1,
		PartitionBufSize: 4,
		NWorkers:         1,
	}
	cfg.Decay.Defaults()

	groups := []GroupConfig{
		{Name: "A", StartN: 0, NumN: 1, MaxDelay: delay},
		{Name: "B", StartN: 1, NumN: 1, MaxDelay: delay},
	}

	sy := NewSynapses(1)
	sy.Npre = []int32{0, 1}
	sy.CumulativePre = []int32{0, 0, 1}
	sy.Npost = []int32{1, 0}
	sy.CumulativePost = []int32{0, 1, 1}
	sy.PreSynapticIds = []int32{0}
	sy.PostSynapticIds = []PostSynId{{Post: 1, PreSynSlot: 0}}
	sy.PostDelayInfo = make([]DelayRange, 2*(delay+1))
	sy.PostDelayInfo[0*(delay+1)+delay] = DelayRange{Start: 0, Length: 1}
	sy.GrpIds = []int32{0, 1}
	sy.ConnIdsPreIdx = []int32{0}
	sy.MulSynFast = []float32{1}
	sy.MulSynSlow = []float32{1}
	sy.Wt[0] = 10
	sy.MaxSynWt[0] = 10

	net := NewNetwork(cfg, groups, sy)
	net.Neurons.SetDefaultIzh(0)
	net.Neurons.SetDefaultIzh(1)
	return net, sy
}
