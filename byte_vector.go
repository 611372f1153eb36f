package ssztypes

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/eth2030/ssztypes/ssz"
)

// ByteVector is a []byte specialization of FixedVector: exactly capacity
// bytes, elements replaceable, length immutable. It avoids per-element
// boxing for the byte workloads (roots, keys, payload fields) that dominate
// consensus data.
type ByteVector struct {
	data     []byte
	capacity uint64
}

// NewByteVector builds a vector from data, which must be exactly capacity
// bytes. The slice is retained, not copied.
func NewByteVector(data []byte, capacity uint64) (*ByteVector, error) {
	if uint64(len(data)) != capacity {
		return nil, &LengthError{Len: uint64(len(data)), Max: capacity}
	}
	return &ByteVector{data: data, capacity: capacity}, nil
}

// ByteVectorRepeat builds a full vector by repeating b capacity times.
func ByteVectorRepeat(b byte, capacity uint64) *ByteVector {
	data := make([]byte, safeLen(capacity))
	for i := range data {
		data[i] = b
	}
	return &ByteVector{data: data, capacity: capacity}
}

// ByteVectorFromSSZ decodes a vector of exactly capacity bytes.
func ByteVectorFromSSZ(data []byte, capacity uint64) (*ByteVector, error) {
	if len(data) == 0 {
		return nil, ssz.InvalidByteLengthError{Len: 0, Expected: 1}
	}
	if uint64(len(data)) != capacity {
		return nil, fmt.Errorf("%w: vector of %d bytes decoded %d", ssz.ErrBytesInvalid, capacity, len(data))
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return &ByteVector{data: cp, capacity: capacity}, nil
}

// Len returns the number of bytes, which always equals the capacity.
func (v *ByteVector) Len() int { return len(v.data) }

// Capacity returns the declared capacity.
func (v *ByteVector) Capacity() uint64 { return v.capacity }

// Get returns the byte at index i, panicking like a slice index.
func (v *ByteVector) Get(i int) byte { return v.data[i] }

// Set replaces the byte at index i.
func (v *ByteVector) Set(i int, b byte) { v.data[i] = b }

// Bytes returns the backing slice. Mutating it mutates the vector.
func (v *ByteVector) Bytes() []byte { return v.data }

// FixedLength reports whether the encoding has a fixed byte length; for a
// byte vector it always does.
func (v *ByteVector) FixedLength() bool { return true }

// SizeSSZ returns the encoded byte length.
func (v *ByteVector) SizeSSZ() int { return len(v.data) }

// MarshalSSZ serializes the vector as its raw bytes.
func (v *ByteVector) MarshalSSZ() ([]byte, error) {
	out := make([]byte, len(v.data))
	copy(out, v.data)
	return out, nil
}

// HashTreeRoot computes the Merkle root of the packed bytes.
func (v *ByteVector) HashTreeRoot() ([32]byte, error) {
	depth := ssz.Depth(ssz.ChunkCount(ssz.KindBasic, v.capacity, 1))
	return ssz.MerkleizeToDepth(ssz.Pack(v.data), depth), nil
}

// Prove returns the authentication path for the chunk containing byte i.
func (v *ByteVector) Prove(i uint64) ([][32]byte, error) {
	if i >= uint64(len(v.data)) {
		return nil, fmt.Errorf("%w: byte %d of %d", ssz.ErrInvalidIndex, i, len(v.data))
	}
	depth := ssz.Depth(ssz.ChunkCount(ssz.KindBasic, v.capacity, 1))
	prover := ssz.NewProver(ssz.Pack(v.data), depth)
	return prover.Prove(ssz.ElementGindex(1, i, v.capacity, 1, ssz.KindBasic, false))
}

// Equal reports whether two vectors hold equal bytes; the declared
// capacity does not participate.
func (v *ByteVector) Equal(other *ByteVector) bool {
	return bytes.Equal(v.data, other.data)
}

// MarshalJSON renders the vector as a 0x-prefixed hex string.
func (v *ByteVector) MarshalJSON() ([]byte, error) {
	return json.Marshal(hexutil.Bytes(v.data))
}

// UnmarshalJSON replaces the vector's contents from a 0x-prefixed hex
// string of exactly capacity bytes.
func (v *ByteVector) UnmarshalJSON(input []byte) error {
	var b hexutil.Bytes
	if err := b.UnmarshalJSON(input); err != nil {
		return err
	}
	if uint64(len(b)) != v.capacity {
		return &LengthError{Len: uint64(len(b)), Max: v.capacity}
	}
	v.data = b
	return nil
}
