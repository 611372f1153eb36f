package ssztypes

import (
	"github.com/holiman/uint256"

	"github.com/eth2030/ssztypes/ssz"
)

// ElementType describes how values of type E are encoded, decoded and
// merkleized inside a bounded container. The set of hashing kinds is closed:
// an element type is either Basic (a fixed-width scalar, packed several to a
// leaf chunk) or Composite (one element per leaf, represented by its own
// hash tree root).
type ElementType[E any] interface {
	// Kind reports how elements participate in Merkleization.
	Kind() ssz.TreeHashKind
	// FixedSize returns the byte length of E's encoding when it is
	// fixed-length, or 0 when E encodes to a variable number of bytes.
	FixedSize() int
	Marshal(E) ([]byte, error)
	Unmarshal([]byte) (E, error)
	HashTreeRoot(E) ([32]byte, error)
}

// --- Basic element types ---

type basicType[E any] struct {
	size int
	enc  func(E) []byte
	dec  func([]byte) (E, error)
}

func (b basicType[E]) Kind() ssz.TreeHashKind { return ssz.KindBasic }
func (b basicType[E]) FixedSize() int         { return b.size }

func (b basicType[E]) Marshal(v E) ([]byte, error) {
	return b.enc(v), nil
}

func (b basicType[E]) Unmarshal(data []byte) (E, error) {
	return b.dec(data)
}

func (b basicType[E]) HashTreeRoot(v E) ([32]byte, error) {
	var chunk [32]byte
	copy(chunk[:], b.enc(v))
	return chunk, nil
}

// Built-in basic element types.
var (
	Bool   ElementType[bool]   = basicType[bool]{1, ssz.MarshalBool, ssz.UnmarshalBool}
	Uint8  ElementType[uint8]  = basicType[uint8]{1, ssz.MarshalUint8, ssz.UnmarshalUint8}
	Uint16 ElementType[uint16] = basicType[uint16]{2, ssz.MarshalUint16, ssz.UnmarshalUint16}
	Uint32 ElementType[uint32] = basicType[uint32]{4, ssz.MarshalUint32, ssz.UnmarshalUint32}
	Uint64 ElementType[uint64] = basicType[uint64]{8, ssz.MarshalUint64, ssz.UnmarshalUint64}
)

// Uint256 elements are 256-bit unsigned integers encoded as 32 bytes
// little-endian, occupying exactly one chunk.
var Uint256 ElementType[uint256.Int] = uint256Type{}

type uint256Type struct{}

func (uint256Type) Kind() ssz.TreeHashKind { return ssz.KindBasic }
func (uint256Type) FixedSize() int         { return 32 }

func (uint256Type) Marshal(v uint256.Int) ([]byte, error) {
	return ssz.MarshalUint256([4]uint64(v)), nil
}

func (uint256Type) Unmarshal(data []byte) (uint256.Int, error) {
	limbs, err := ssz.UnmarshalUint256(data)
	if err != nil {
		return uint256.Int{}, err
	}
	return uint256.Int(limbs), nil
}

func (uint256Type) HashTreeRoot(v uint256.Int) ([32]byte, error) {
	var chunk [32]byte
	copy(chunk[:], ssz.MarshalUint256([4]uint64(v)))
	return chunk, nil
}

// Bytes32 elements are 32-byte values (roots, commitments) that already fit
// a chunk: each one is its own hash tree root.
var Bytes32 ElementType[[32]byte] = bytes32Type{}

type bytes32Type struct{}

func (bytes32Type) Kind() ssz.TreeHashKind { return ssz.KindComposite }
func (bytes32Type) FixedSize() int         { return 32 }

func (bytes32Type) Marshal(v [32]byte) ([]byte, error) {
	out := make([]byte, 32)
	copy(out, v[:])
	return out, nil
}

func (bytes32Type) Unmarshal(data []byte) ([32]byte, error) {
	if len(data) != 32 {
		return [32]byte{}, ssz.ErrSize
	}
	var v [32]byte
	copy(v[:], data)
	return v, nil
}

func (bytes32Type) HashTreeRoot(v [32]byte) ([32]byte, error) {
	return v, nil
}

// --- Composite element adapter ---

// SSZObject constrains composite element types that carry their own SSZ
// codec and tree hashing.
type SSZObject[E any] interface {
	*E
	ssz.Marshaler
	ssz.Unmarshaler
	ssz.HashRoot
}

// Object adapts a composite SSZ type into an ElementType. fixedSize is the
// byte length of E's encoding when fixed, or 0 when E is variable-length.
func Object[E any, PE SSZObject[E]](fixedSize int) ElementType[E] {
	return objectType[E, PE]{fixedSize: fixedSize}
}

type objectType[E any, PE SSZObject[E]] struct {
	fixedSize int
}

func (objectType[E, PE]) Kind() ssz.TreeHashKind { return ssz.KindComposite }

func (o objectType[E, PE]) FixedSize() int { return o.fixedSize }

func (objectType[E, PE]) Marshal(v E) ([]byte, error) {
	return PE(&v).MarshalSSZ()
}

func (objectType[E, PE]) Unmarshal(data []byte) (E, error) {
	var v E
	if err := PE(&v).UnmarshalSSZ(data); err != nil {
		return v, err
	}
	return v, nil
}

func (objectType[E, PE]) HashTreeRoot(v E) ([32]byte, error) {
	return PE(&v).HashTreeRoot()
}
