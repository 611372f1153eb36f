package ssztypes

import (
	"encoding/json"
	"fmt"

	"github.com/eth2030/ssztypes/ssz"
)

// VariableList is an ordered, homogeneous, append-only container bounded by
// a maximum length. The bound is set at construction and never changes;
// the current length may grow up to it.
type VariableList[E any] struct {
	typ      ElementType[E]
	elems    []E
	capacity uint64
}

// NewVariableList builds a list from elems, which must not exceed capacity
// elements. The slice is retained, not copied.
func NewVariableList[E any](typ ElementType[E], elems []E, capacity uint64) (*VariableList[E], error) {
	if uint64(len(elems)) > capacity {
		return nil, &LengthError{Len: uint64(len(elems)), Max: capacity}
	}
	return &VariableList[E]{typ: typ, elems: elems, capacity: capacity}, nil
}

// EmptyVariableList builds a zero-length list with the given capacity.
func EmptyVariableList[E any](typ ElementType[E], capacity uint64) *VariableList[E] {
	return &VariableList[E]{typ: typ, capacity: capacity}
}

// VariableListFromSSZ decodes a list of at most capacity elements. Empty
// input decodes to an empty list.
func VariableListFromSSZ[E any](typ ElementType[E], data []byte, capacity uint64) (*VariableList[E], error) {
	if len(data) == 0 {
		return EmptyVariableList(typ, capacity), nil
	}

	var (
		elems []E
		err   error
	)
	if typ.FixedSize() > 0 {
		elems, err = unmarshalChunked(typ, data)
		if err == nil && uint64(len(elems)) > capacity {
			err = fmt.Errorf("%w: list of %d elements exceeds maximum of %d", ssz.ErrBytesInvalid, len(elems), capacity)
		}
	} else {
		elems, err = unmarshalVariableSeq(typ, data, capacity)
	}
	if err != nil {
		return nil, err
	}
	return &VariableList[E]{typ: typ, elems: elems, capacity: capacity}, nil
}

// Len returns the number of elements currently in the list.
func (l *VariableList[E]) Len() int { return len(l.elems) }

// Capacity returns the declared maximum length.
func (l *VariableList[E]) Capacity() uint64 { return l.capacity }

// Get returns the element at index i. It panics if i is out of range, like
// a slice index.
func (l *VariableList[E]) Get(i int) E { return l.elems[i] }

// Set replaces the element at index i. It panics if i is out of range.
func (l *VariableList[E]) Set(i int, e E) { l.elems[i] = e }

// Elements returns the backing slice. Mutating its elements mutates the
// list; the length must not be changed.
func (l *VariableList[E]) Elements() []E { return l.elems }

// Append adds an element at the end. When the list is full it fails with a
// LengthError carrying the attempted new length, and the list is left
// unchanged.
func (l *VariableList[E]) Append(e E) error {
	if uint64(len(l.elems)) >= l.capacity {
		return &LengthError{Len: uint64(len(l.elems)) + 1, Max: l.capacity}
	}
	l.elems = append(l.elems, e)
	return nil
}

// FixedLength reports whether the list's encoding has a fixed byte length.
// A list never does: its occupancy varies.
func (l *VariableList[E]) FixedLength() bool { return false }

// SizeSSZ returns the encoded byte length of the current contents.
func (l *VariableList[E]) SizeSSZ() int {
	n, err := sizeElems(l.typ, l.elems)
	if err != nil {
		return 0
	}
	return n
}

// MarshalSSZ serializes the list: fixed-size elements concatenated in
// order, variable-size elements behind a 4-byte offset table. There is no
// inline length prefix; the length lives in the enclosing structure's
// offsets.
func (l *VariableList[E]) MarshalSSZ() ([]byte, error) {
	return marshalElems(l.typ, l.elems)
}

// HashTreeRoot computes the Merkle root of the list. The tree is shaped by
// the capacity and padded with zero chunks; the current length is mixed in
// at the top so that occupancies are distinguishable.
func (l *VariableList[E]) HashTreeRoot() ([32]byte, error) {
	leaves, err := containerLeaves(l.typ, l.elems)
	if err != nil {
		return [32]byte{}, err
	}
	root := ssz.MerkleizeToDepth(leaves, treeDepth(l.typ, l.capacity))
	return ssz.MixInLength(root, uint64(len(l.elems))), nil
}

// Prove returns the authentication path for element i, from the element's
// leaf up to the list root. The final sibling is the length chunk of the
// mix-in level.
func (l *VariableList[E]) Prove(i uint64) ([][32]byte, error) {
	if i >= uint64(len(l.elems)) {
		return nil, fmt.Errorf("%w: element %d of %d", ssz.ErrInvalidIndex, i, len(l.elems))
	}
	leaves, err := containerLeaves(l.typ, l.elems)
	if err != nil {
		return nil, err
	}
	prover := ssz.NewProver(leaves, treeDepth(l.typ, l.capacity))
	// Path within the data subtree, then the length chunk for the mix-in.
	proof, err := prover.Prove(ssz.ElementGindex(1, i, l.capacity, l.typ.FixedSize(), l.typ.Kind(), false))
	if err != nil {
		return nil, err
	}
	var lengthChunk [32]byte
	copy(lengthChunk[:], ssz.MarshalUint64(uint64(len(l.elems))))
	return append(proof, lengthChunk), nil
}

// ElementGindex returns the generalized index of element i when the list's
// own root sits at parent. The extra factor of two accounts for the length
// mix-in wrapping the data subtree.
func (l *VariableList[E]) ElementGindex(parent, i uint64) uint64 {
	return ssz.ElementGindex(parent, i, l.capacity, l.typ.FixedSize(), l.typ.Kind(), true)
}

// EqualList reports whether two lists hold equal elements in equal order.
// The declared capacity deliberately does not participate: lists with
// different bounds but equal contents compare equal, even though their hash
// tree roots differ. See the package documentation.
func EqualList[E comparable](a, b *VariableList[E]) bool {
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

// MarshalJSON renders the list as a plain array of its elements.
func (l *VariableList[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.elems)
}

// UnmarshalJSON replaces the list's contents from a plain array. The list
// must have been built by a constructor first; the array must not exceed
// the capacity.
func (l *VariableList[E]) UnmarshalJSON(data []byte) error {
	if l.typ == nil {
		return fmt.Errorf("ssztypes: cannot unmarshal into zero-value VariableList")
	}
	var elems []E
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	if uint64(len(elems)) > l.capacity {
		return &LengthError{Len: uint64(len(elems)), Max: l.capacity}
	}
	l.elems = elems
	return nil
}
