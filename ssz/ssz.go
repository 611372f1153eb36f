// Package ssz implements the low-level Simple Serialize (SSZ) primitives
// shared by the bounded container types: basic-type codecs, offset-table
// encoding for variable-size elements, Merkleization, and Merkle proof
// generation over chunk trees.
//
// Spec: https://github.com/ethereum/consensus-specs/blob/dev/ssz/simple-serialize.md
package ssz

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrSize           = errors.New("ssz: invalid size")
	ErrOffset         = errors.New("ssz: invalid offset")
	ErrListTooLong    = errors.New("ssz: list exceeds maximum length")
	ErrInvalidBool    = errors.New("ssz: invalid boolean value")
	ErrZeroLengthItem = errors.New("ssz: zero-length item in fixed-size decode")
	ErrBytesInvalid   = errors.New("ssz: bytes invalid")
	ErrInvalidIndex   = errors.New("ssz: invalid generalized index")
)

// InvalidByteLengthError reports an input buffer whose length cannot decode
// to the expected type.
type InvalidByteLengthError struct {
	Len      int // length of the given buffer
	Expected int // minimum length required
}

func (e InvalidByteLengthError) Error() string {
	return fmt.Sprintf("ssz: invalid byte length %d, expected at least %d", e.Len, e.Expected)
}

// BytesPerLengthOffset is the number of bytes used for each offset in
// variable-length SSZ containers (4 bytes, little-endian uint32).
const BytesPerLengthOffset = 4

// BytesPerChunk is the number of bytes in each leaf chunk for Merkleization.
const BytesPerChunk = 32

// TreeHashKind tags how an element type participates in Merkleization.
type TreeHashKind uint8

const (
	// KindBasic marks fixed-width scalars. Several basic values are packed
	// together into a single 32-byte leaf chunk.
	KindBasic TreeHashKind = iota
	// KindComposite marks container/list/vector element types. A composite
	// element always occupies its own leaf, using the element's own hash
	// tree root, never its raw encoding.
	KindComposite
)

// PackingFactor returns how many basic values of the given serialized size
// share one 32-byte chunk. Composite elements always have factor 1.
func PackingFactor(kind TreeHashKind, elemSize int) uint64 {
	if kind == KindComposite || elemSize <= 0 || elemSize > BytesPerChunk {
		return 1
	}
	return uint64(BytesPerChunk / elemSize)
}

// ChunkCount returns the number of leaf chunks a container with the given
// declared capacity occupies. The tree shape depends on the capacity, not
// the current occupancy.
func ChunkCount(kind TreeHashKind, capacity uint64, elemSize int) uint64 {
	if kind == KindComposite {
		return capacity
	}
	pf := PackingFactor(kind, elemSize)
	return (capacity + pf - 1) / pf
}

// Marshaler is implemented by types that can serialize themselves to SSZ.
type Marshaler interface {
	MarshalSSZ() ([]byte, error)
	SizeSSZ() int
}

// Unmarshaler is implemented by types that can deserialize themselves from SSZ.
type Unmarshaler interface {
	UnmarshalSSZ([]byte) error
}

// HashRoot is implemented by types that can compute their SSZ hash tree root.
type HashRoot interface {
	HashTreeRoot() ([32]byte, error)
}
