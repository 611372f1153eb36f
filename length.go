package ssztypes

import (
	"fmt"
	"math"
	"sync/atomic"
)

// Capacities are carried as uint64 everywhere; conversion to a native int
// only happens at allocation boundaries, through safeLen. A declared
// capacity larger than the native addressable range is a configuration or
// platform mismatch, not bad input data, so the default response is a
// process fault rather than an error value.

// OverflowPolicy selects how safeLen treats a capacity that exceeds the
// native int range.
type OverflowPolicy uint32

const (
	// OverflowPanic fails fatally, naming the requested capacity and the
	// native maximum. This is the default.
	OverflowPanic OverflowPolicy = iota
	// OverflowClamp clamps to the native maximum. A container that actually
	// needed more elements than that would fail its allocation anyway; the
	// clamp merely admits capacities that are declared larger than they are
	// ever occupied (e.g. 2^40-bounded registries holding a few million
	// entries on a narrow target).
	OverflowClamp
)

var overflowPolicy atomic.Uint32

// SetOverflowPolicy configures the process-wide capacity overflow policy.
// It is meant to be called once at startup, before any containers are
// built, mirroring a build-level switch; it is not a per-call option.
func SetOverflowPolicy(p OverflowPolicy) {
	overflowPolicy.Store(uint32(p))
}

// CapacityOverflowPolicy returns the current overflow policy.
func CapacityOverflowPolicy() OverflowPolicy {
	return OverflowPolicy(overflowPolicy.Load())
}

// safeLen converts a declared capacity to a native length. Values within
// the native int range pass through unchanged; larger values follow the
// configured policy.
func safeLen(capacity uint64) int {
	if capacity <= math.MaxInt {
		return int(capacity)
	}
	if CapacityOverflowPolicy() == OverflowClamp {
		return math.MaxInt
	}
	panic(fmt.Sprintf("ssztypes: capacity %d overflows native maximum %d", capacity, math.MaxInt))
}
