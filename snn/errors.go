// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "fmt"

// ErrCode identifies the kind of fatal condition a tick can report.
// A tick either completes cleanly (ErrNone) or aborts with exactly one
// of these, per spec section 7: capacity overflows and consistency
// errors are fatal and are never retried -- the tick is indivisible.
type ErrCode int32

const (
	// ErrNone means the tick (or kernel) completed without error.
	ErrNone ErrCode = iota

	// ErrFireUpdateOverflowD1 means FIND_FIRING tried to record more
	// spikes than MaxSpikesD1 allows in the unit-delay firing table.
	ErrFireUpdateOverflowD1

	// ErrFireUpdateOverflowD2 means FIND_FIRING tried to record more
	// spikes than MaxSpikesD2 allows in the multi-delay firing table.
	ErrFireUpdateOverflowD2

	// ErrCurrentUpdateGroupUnknown means delayed-spike delivery reached
	// a synapse whose post-synaptic neuron does not resolve to a known
	// group -- a consistency error in the consumed arrays.
	ErrCurrentUpdateGroupUnknown
)

func (e ErrCode) String() string {
	switch e {
	case ErrNone:
		return "ErrNone"
	case ErrFireUpdateOverflowD1:
		return "FIRE_UPDATE_OVERFLOW_D1"
	case ErrFireUpdateOverflowD2:
		return "FIRE_UPDATE_OVERFLOW_D2"
	case ErrCurrentUpdateGroupUnknown:
		return "CURRENT_UPDATE_GROUP_UNKNOWN"
	default:
		return fmt.Sprintf("ErrCode(%d)", int32(e))
	}
}

// TickError reports a fatal condition detected during a single tick.
// The tick that produced it is considered corrupt in its entirety --
// callers should not trust any output of that tick and should not
// retry it; numerical saturation (voltage/weight clamping) is never
// reported here, since it is part of the contract, not an error.
type TickError struct {
	Code ErrCode

	// SimTime is the tick on which the error was detected.
	SimTime int32

	// GroupID is the offending group, when known (-1 otherwise).
	GroupID int32
}

func (e *TickError) Error() string {
	if e.GroupID >= 0 {
		return fmt.Sprintf("tick %d: %s (group %d)", e.SimTime, e.Code, e.GroupID)
	}
	return fmt.Sprintf("tick %d: %s", e.SimTime, e.Code)
}
