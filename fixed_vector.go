package ssztypes

import (
	"encoding/json"
	"fmt"

	"github.com/eth2030/ssztypes/ssz"
)

// FixedVector is an ordered, homogeneous container whose length always
// equals its capacity. The capacity is set at construction and never
// changes; elements may be replaced in place but never added or removed.
type FixedVector[E any] struct {
	typ      ElementType[E]
	elems    []E
	capacity uint64
}

// NewFixedVector builds a vector from elems, which must have exactly
// capacity elements. The slice is retained, not copied.
func NewFixedVector[E any](typ ElementType[E], elems []E, capacity uint64) (*FixedVector[E], error) {
	if uint64(len(elems)) != capacity {
		return nil, &LengthError{Len: uint64(len(elems)), Max: capacity}
	}
	return &FixedVector[E]{typ: typ, elems: elems, capacity: capacity}, nil
}

// FixedVectorRepeat builds a full vector by repeating elem capacity times.
func FixedVectorRepeat[E any](typ ElementType[E], elem E, capacity uint64) *FixedVector[E] {
	elems := make([]E, safeLen(capacity))
	for i := range elems {
		elems[i] = elem
	}
	return &FixedVector[E]{typ: typ, elems: elems, capacity: capacity}
}

// FixedVectorFromSSZ decodes a vector of exactly capacity elements.
func FixedVectorFromSSZ[E any](typ ElementType[E], data []byte, capacity uint64) (*FixedVector[E], error) {
	if len(data) == 0 {
		return nil, ssz.InvalidByteLengthError{Len: 0, Expected: 1}
	}

	var (
		elems []E
		err   error
	)
	if typ.FixedSize() > 0 {
		elems, err = unmarshalChunked(typ, data)
	} else {
		elems, err = unmarshalVariableSeq(typ, data, capacity)
	}
	if err != nil {
		return nil, err
	}
	if uint64(len(elems)) != capacity {
		return nil, fmt.Errorf("%w: vector of %d elements decoded %d", ssz.ErrBytesInvalid, capacity, len(elems))
	}
	return &FixedVector[E]{typ: typ, elems: elems, capacity: capacity}, nil
}

// Len returns the number of elements, which always equals the capacity.
func (v *FixedVector[E]) Len() int { return len(v.elems) }

// Capacity returns the declared capacity.
func (v *FixedVector[E]) Capacity() uint64 { return v.capacity }

// Get returns the element at index i. It panics if i is out of range, like
// a slice index.
func (v *FixedVector[E]) Get(i int) E { return v.elems[i] }

// Set replaces the element at index i. It panics if i is out of range.
func (v *FixedVector[E]) Set(i int, e E) { v.elems[i] = e }

// Elements returns the backing slice. Mutating its elements mutates the
// vector; the length must not be changed.
func (v *FixedVector[E]) Elements() []E { return v.elems }

// FixedLength reports whether the vector's encoding has a fixed byte
// length, which holds exactly when the element type is fixed-length.
func (v *FixedVector[E]) FixedLength() bool { return v.typ.FixedSize() > 0 }

// SizeSSZ returns the encoded byte length.
func (v *FixedVector[E]) SizeSSZ() int {
	n, err := sizeElems(v.typ, v.elems)
	if err != nil {
		return 0
	}
	return n
}

// MarshalSSZ serializes the vector: fixed-size elements concatenated in
// order, variable-size elements behind a 4-byte offset table.
func (v *FixedVector[E]) MarshalSSZ() ([]byte, error) {
	return marshalElems(v.typ, v.elems)
}

// HashTreeRoot computes the Merkle root of the vector. Fixed shapes never
// mix in a length; it is implied by the capacity.
func (v *FixedVector[E]) HashTreeRoot() ([32]byte, error) {
	leaves, err := containerLeaves(v.typ, v.elems)
	if err != nil {
		return [32]byte{}, err
	}
	return ssz.MerkleizeToDepth(leaves, treeDepth(v.typ, v.capacity)), nil
}

// Prove returns the authentication path for element i: one sibling root per
// tree level, ordered from the element's leaf up to the root. For basic
// elements the leaf is the chunk the element is packed into.
func (v *FixedVector[E]) Prove(i uint64) ([][32]byte, error) {
	if i >= uint64(len(v.elems)) {
		return nil, fmt.Errorf("%w: element %d of %d", ssz.ErrInvalidIndex, i, len(v.elems))
	}
	leaves, err := containerLeaves(v.typ, v.elems)
	if err != nil {
		return nil, err
	}
	prover := ssz.NewProver(leaves, treeDepth(v.typ, v.capacity))
	return prover.Prove(ssz.ElementGindex(1, i, v.capacity, v.typ.FixedSize(), v.typ.Kind(), false))
}

// ElementGindex returns the generalized index of element i when the
// vector's own root sits at parent.
func (v *FixedVector[E]) ElementGindex(parent, i uint64) uint64 {
	return ssz.ElementGindex(parent, i, v.capacity, v.typ.FixedSize(), v.typ.Kind(), false)
}

// EqualFixed reports whether two vectors hold equal elements in equal
// order. The declared capacity does not participate: with equal contents
// the capacities are necessarily equal for fixed shapes, but the symmetry
// with EqualList is kept deliberate.
func EqualFixed[E comparable](a, b *FixedVector[E]) bool {
	if len(a.elems) != len(b.elems) {
		return false
	}
	for i := range a.elems {
		if a.elems[i] != b.elems[i] {
			return false
		}
	}
	return true
}

// MarshalJSON renders the vector as a plain array of its elements.
func (v *FixedVector[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.elems)
}

// UnmarshalJSON replaces the vector's contents from a plain array. The
// vector must have been built by a constructor first; the array length must
// equal the capacity.
func (v *FixedVector[E]) UnmarshalJSON(data []byte) error {
	if v.typ == nil {
		return fmt.Errorf("ssztypes: cannot unmarshal into zero-value FixedVector")
	}
	var elems []E
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	if uint64(len(elems)) != v.capacity {
		return &LengthError{Len: uint64(len(elems)), Max: v.capacity}
	}
	v.elems = elems
	return nil
}
