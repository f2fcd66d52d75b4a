// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package snn is the overall repository for the spiking-network tick engine.

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* snn: the core per-tick simulation engine -- Izhikevich regular neurons
and Poisson generators, delayed weighted synapses, short-term plasticity,
spike-timing-dependent plasticity, conductance- and current-based
synaptic models, homeostatic weight scaling, and dopamine-modulated
learning. This is a single-partition, in-process engine: network
construction, host<->device transfer, spike monitors, and multi-device
partitioning are all treated as external collaborators and live outside
this repository.

* chans: point-neuron synaptic conductance channels (AMPA, NMDA, GABAa,
GABAb), including the rise+decay biexponential variants, shared by the
STP_AND_DECAY and CONDUCTANCE_UPDATE kernels in snn.

* cmd/tickdemo: a runnable example that builds a tiny two-neuron network
by hand (no topology generator -- the arrays are constructed directly,
as snn expects from its external caller) and steps it (1200 ticks by
default), printing each spike delivery from A to B and, at the end, A's
spike count and the synapse's final weight.
*/
package snn
