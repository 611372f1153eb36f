package ssztypes

import (
	"fmt"

	"github.com/eth2030/ssztypes/ssz"
)

// Shared encode/decode/merkleize plumbing for FixedVector and VariableList.

// marshalElems serializes elements in order: fixed-size elements are
// concatenated, variable-size elements go through an offset table.
func marshalElems[E any](typ ElementType[E], elems []E) ([]byte, error) {
	if size := typ.FixedSize(); size > 0 {
		out := make([]byte, 0, size*len(elems))
		for i, e := range elems {
			enc, err := typ.Marshal(e)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			if len(enc) != size {
				return nil, fmt.Errorf("element %d: encoded to %d bytes, want %d: %w", i, len(enc), size, ssz.ErrSize)
			}
			out = append(out, enc...)
		}
		return out, nil
	}

	items := make([][]byte, len(elems))
	for i, e := range elems {
		enc, err := typ.Marshal(e)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		items[i] = enc
	}
	return ssz.MarshalVariableSeq(items)
}

// sizeElems returns the encoded byte length of the elements without
// producing the encoding, except for variable-size elements whose payloads
// must be measured.
func sizeElems[E any](typ ElementType[E], elems []E) (int, error) {
	if size := typ.FixedSize(); size > 0 {
		return size * len(elems), nil
	}
	total := len(elems) * ssz.BytesPerLengthOffset
	for i, e := range elems {
		enc, err := typ.Marshal(e)
		if err != nil {
			return 0, fmt.Errorf("element %d: %w", i, err)
		}
		total += len(enc)
	}
	return total, nil
}

// unmarshalChunked decodes back-to-back fixed-size elements. The input
// length must divide evenly by the element size.
func unmarshalChunked[E any](typ ElementType[E], data []byte) ([]E, error) {
	size := typ.FixedSize()
	if size <= 0 {
		return nil, ssz.ErrZeroLengthItem
	}
	if len(data)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes not a multiple of element size %d", ssz.ErrBytesInvalid, len(data), size)
	}
	elems := make([]E, len(data)/size)
	for i := range elems {
		e, err := typ.Unmarshal(data[i*size : (i+1)*size])
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		elems[i] = e
	}
	return elems, nil
}

// unmarshalVariableSeq decodes offset-table items, bounded by maxItems.
func unmarshalVariableSeq[E any](typ ElementType[E], data []byte, maxItems uint64) ([]E, error) {
	items, err := ssz.DecodeVariableSeq(data, maxItems)
	if err != nil {
		return nil, err
	}
	elems := make([]E, len(items))
	for i, item := range items {
		e, err := typ.Unmarshal(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		elems[i] = e
	}
	return elems, nil
}

// containerLeaves produces the leaf chunks for Merkleization: packed raw
// encodings for basic elements, one hash tree root per leaf for composites.
func containerLeaves[E any](typ ElementType[E], elems []E) ([][32]byte, error) {
	if typ.Kind() == ssz.KindBasic {
		buf, err := marshalElems(typ, elems)
		if err != nil {
			return nil, err
		}
		return ssz.Pack(buf), nil
	}
	roots := make([][32]byte, len(elems))
	for i, e := range elems {
		root, err := typ.HashTreeRoot(e)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		roots[i] = root
	}
	return roots, nil
}

// treeDepth returns the depth of the data subtree for a container with the
// given element type and declared capacity.
func treeDepth[E any](typ ElementType[E], capacity uint64) int {
	return ssz.Depth(ssz.ChunkCount(typ.Kind(), capacity, typ.FixedSize()))
}
