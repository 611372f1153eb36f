// Package ssztypes provides length-bounded, ordered container types with
// deterministic SSZ encoding and Merkle hash tree roots:
//
//   - FixedVector: a container whose length always equals its capacity.
//   - VariableList: an append-only container bounded by a maximum length.
//   - ByteVector, ByteList: byte specializations of the above.
//
// Capacities are fixed at construction and never change. Equal logical
// contents always produce identical wire bytes and identical roots, and the
// roots of variable containers mix in the current length so that different
// occupancies of the same capacity are cryptographically distinguishable.
//
// One deliberate quirk carried over from the reference behavior: equality
// is defined over (length, ordered elements) only. Two containers with
// different declared capacities but equal contents compare equal, even
// though their hash tree roots differ whenever the capacities shape the
// tree differently. Callers that need capacity-sensitive identity should
// compare roots, not values.
package ssztypes
