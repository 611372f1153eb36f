package ssztypes

import "iter"

// maxPreallocElements caps the up-front allocation of the sequence
// constructors. Some containers declare very large bounds (2^40 and beyond)
// that must never translate into an equally large allocation before any
// element has been seen: a hostile or mistaken capacity would otherwise
// exhaust memory up front. 128Ki elements keeps the initial allocation in
// the single-digit-MiB range for small element types while still avoiding
// regrowth for the common case.
const maxPreallocElements = 128 * 1024

func preallocHint(capacity uint64) int {
	return safeLen(min(capacity, maxPreallocElements))
}

// VariableListFromSeq builds a list by draining seq, failing as soon as the
// running count would exceed capacity. Elements before the failure are
// consumed but discarded; the sequence is never read past the bound plus
// one element.
func VariableListFromSeq[E any](typ ElementType[E], seq iter.Seq[E], capacity uint64) (*VariableList[E], error) {
	l := &VariableList[E]{
		typ:      typ,
		elems:    make([]E, 0, preallocHint(capacity)),
		capacity: capacity,
	}
	for e := range seq {
		if err := l.Append(e); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// FixedVectorFromSeq builds a vector by draining seq, which must yield
// exactly capacity elements. Like VariableListFromSeq it fails on the first
// element past the bound rather than draining the sequence.
func FixedVectorFromSeq[E any](typ ElementType[E], seq iter.Seq[E], capacity uint64) (*FixedVector[E], error) {
	elems := make([]E, 0, preallocHint(capacity))
	for e := range seq {
		if uint64(len(elems)) >= capacity {
			return nil, &LengthError{Len: capacity + 1, Max: capacity}
		}
		elems = append(elems, e)
	}
	return NewFixedVector(typ, elems, capacity)
}
