// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package snn is the per-tick spiking-network simulation engine: the
// seven per-tick kernels (STP_AND_DECAY, FIND_FIRING, UPDATE_TIME_TABLE,
// CURRENT_UPDATE_D2, CURRENT_UPDATE_D1, CONDUCTANCE_UPDATE,
// NEURON_STATE_UPDATE/GROUP_STATE_UPDATE) plus the two cadence kernels
// a Runner sequences between ticks (SecondBoundary every 1000 ticks,
// UpdateWeights every StdpScaleFactor ticks).
//
// The //gosl: start/end blocks scattered through this package mark the
// struct and function bodies a GPU backend would compile unmodified;
// go:generate below drives that translation the same way the
// sibling axon engine does, emitting a WGSL kernel source tree
// alongside this package without this package importing gosl itself.
package snn

//go:generate gosl -keep bitscan.go iset.go firingtable.go stdp.go stp.go firing.go compaction.go delivery.go conductance.go integrate.go weights.go neuron.go synapse.go partition.go ../chans/chans.go
