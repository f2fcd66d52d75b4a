// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tickdemo builds a minimal two-group network by hand (no
// topology generator is part of this repository -- spec section 6)
// and steps it with a Runner, printing every tick on which the single
// delayed synapse delivers one of A's spikes to B (exactly delay ticks
// after A fired), then A's spike count and the synapse's final weight.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/emer/snn/snn"
)

func main() {
	delay := flag.Int("delay", 3, "axonal delay, in ms, from A to B")
	ticks := flag.Int("ticks", 1200, "number of ticks to run past second 0")
	flag.Parse()

	net, sy := buildChain(int32(*delay))
	defer net.Close()

	fmt.Println(net.SizeReport())

	r := snn.NewRunner(net)

	// Scenario 2: make A spike once at tick 100 by forcing its
	// membrane voltage above threshold, then watch for A's spikes
	// reaching B. B's CUBA current is consumed and zeroed within the
	// tick it arrives, so the arrival is read from the synapse's
	// SynSpikeTime, which delivery stamps with the arrival tick.
	const fireAt = 100
	for ms := 0; ms < *ticks; ms++ {
		if ms == fireAt {
			net.Neurons.Voltage[0] = 30
		}
		if err := r.Step(); err != nil {
			log.Fatalf("tick %d: %v", ms, err)
		}
		if sy.SynSpikeTime[0] == int32(ms) {
			fmt.Printf("tick %4d: spike from A reached B, B.Current += %v (A forced to fire at %d, delay %d)\n", ms, sy.Wt[0], fireAt, *delay)
		}
	}

	fmt.Printf("A spiked %d time(s); synapse weight now %v\n", net.Neurons.NSpikeCnt[0], sy.Wt[0])
	fmt.Printf("ran %d ticks total\n", r.TicksRun)
}

// buildChain constructs the same two-neuron A->B wiring the package's
// own tests use (one excitatory, CUBA synapse at the given axonal
// delay), except that B has exponential E-STDP enabled, so here the
// synapse is plastic.
func buildChain(delay int32) (*snn.Network, *snn.Synapses) {
	cfg := snn.DefaultConfig()
	cfg.MaxDelay = delay
	cfg.NumN = 2
	cfg.NumNReg = 2
	cfg.NumGroups = 2
	cfg.MaxNumPreSynN = 1
	cfg.MaxSpikesD1 = 1024
	cfg.MaxSpikesD2 = 1024
	cfg.WithConductances = false
	cfg.StdpScaleFactor = 1000
	cfg.PartitionBufSize = 4
	cfg.NWorkers = 2

	groups := []snn.GroupConfig{
		{Name: "A", StartN: 0, NumN: 1, MaxDelay: delay},
		{Name: "B", StartN: 1, NumN: 1, MaxDelay: delay, WithSTDP: true, WithESTDP: true,
			EParams: snn.STDPParams{Curve: snn.ExpCurve, Alpha: 0.01, TauInv: 0.05}},
	}

	sy := snn.NewSynapses(1)
	sy.Npre = []int32{0, 1}
	sy.CumulativePre = []int32{0, 0, 1}
	sy.Npost = []int32{1, 0}
	sy.CumulativePost = []int32{0, 1, 1}
	sy.PreSynapticIds = []int32{0}
	sy.PostSynapticIds = []snn.PostSynId{{Post: 1, PreSynSlot: 0}}
	sy.PostDelayInfo = make([]snn.DelayRange, 2*(delay+1))
	sy.PostDelayInfo[0*(delay+1)+delay] = snn.DelayRange{Start: 0, Length: 1}
	sy.GrpIds = []int32{0, 1}
	sy.ConnIdsPreIdx = []int32{0}
	sy.MulSynFast = []float32{1}
	sy.MulSynSlow = []float32{1}
	sy.Wt[0] = 10
	sy.MaxSynWt[0] = 10

	net := snn.NewNetwork(cfg, groups, sy)
	net.Neurons.SetDefaultIzh(0)
	net.Neurons.SetDefaultIzh(1)
	return net, sy
}
