package ssztypes

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/eth2030/ssztypes/ssz"
)

// ByteList is a []byte specialization of VariableList: at most capacity
// bytes, append-only growth.
type ByteList struct {
	data     []byte
	capacity uint64
}

// NewByteList builds a list from data, which must not exceed capacity
// bytes. The slice is retained, not copied.
func NewByteList(data []byte, capacity uint64) (*ByteList, error) {
	if uint64(len(data)) > capacity {
		return nil, &LengthError{Len: uint64(len(data)), Max: capacity}
	}
	return &ByteList{data: data, capacity: capacity}, nil
}

// EmptyByteList builds a zero-length list with the given capacity.
func EmptyByteList(capacity uint64) *ByteList {
	return &ByteList{capacity: capacity}
}

// ByteListFromSSZ decodes a list of at most capacity bytes. Empty input
// decodes to an empty list.
func ByteListFromSSZ(data []byte, capacity uint64) (*ByteList, error) {
	if uint64(len(data)) > capacity {
		return nil, fmt.Errorf("%w: list of %d bytes exceeds maximum of %d", ssz.ErrBytesInvalid, len(data), capacity)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return &ByteList{data: cp, capacity: capacity}, nil
}

// Len returns the number of bytes currently in the list.
func (l *ByteList) Len() int { return len(l.data) }

// Capacity returns the declared maximum length.
func (l *ByteList) Capacity() uint64 { return l.capacity }

// Get returns the byte at index i, panicking like a slice index.
func (l *ByteList) Get(i int) byte { return l.data[i] }

// Set replaces the byte at index i.
func (l *ByteList) Set(i int, b byte) { l.data[i] = b }

// Bytes returns the backing slice. Mutating its elements mutates the list;
// the length must not be changed.
func (l *ByteList) Bytes() []byte { return l.data }

// Append adds a byte at the end. When the list is full it fails with a
// LengthError carrying the attempted new length, and the list is left
// unchanged.
func (l *ByteList) Append(b byte) error {
	if uint64(len(l.data)) >= l.capacity {
		return &LengthError{Len: uint64(len(l.data)) + 1, Max: l.capacity}
	}
	l.data = append(l.data, b)
	return nil
}

// FixedLength reports whether the encoding has a fixed byte length; for a
// byte list it never does.
func (l *ByteList) FixedLength() bool { return false }

// SizeSSZ returns the encoded byte length of the current contents.
func (l *ByteList) SizeSSZ() int { return len(l.data) }

// MarshalSSZ serializes the list as its raw bytes, with no inline length
// prefix; the length lives in the enclosing structure's offsets.
func (l *ByteList) MarshalSSZ() ([]byte, error) {
	out := make([]byte, len(l.data))
	copy(out, l.data)
	return out, nil
}

// HashTreeRoot computes the Merkle root: the bytes are packed into chunks,
// the tree is shaped by the capacity, and the current length is mixed in.
func (l *ByteList) HashTreeRoot() ([32]byte, error) {
	depth := ssz.Depth(ssz.ChunkCount(ssz.KindBasic, l.capacity, 1))
	root := ssz.MerkleizeToDepth(ssz.Pack(l.data), depth)
	return ssz.MixInLength(root, uint64(len(l.data))), nil
}

// Prove returns the authentication path for the chunk containing byte i,
// ending with the length chunk of the mix-in level.
func (l *ByteList) Prove(i uint64) ([][32]byte, error) {
	if i >= uint64(len(l.data)) {
		return nil, fmt.Errorf("%w: byte %d of %d", ssz.ErrInvalidIndex, i, len(l.data))
	}
	depth := ssz.Depth(ssz.ChunkCount(ssz.KindBasic, l.capacity, 1))
	prover := ssz.NewProver(ssz.Pack(l.data), depth)
	proof, err := prover.Prove(ssz.ElementGindex(1, i, l.capacity, 1, ssz.KindBasic, false))
	if err != nil {
		return nil, err
	}
	var lengthChunk [32]byte
	copy(lengthChunk[:], ssz.MarshalUint64(uint64(len(l.data))))
	return append(proof, lengthChunk), nil
}

// Equal reports whether two lists hold equal bytes; the declared capacity
// deliberately does not participate. See the package documentation.
func (l *ByteList) Equal(other *ByteList) bool {
	return bytes.Equal(l.data, other.data)
}

// MarshalJSON renders the list as a 0x-prefixed hex string.
func (l *ByteList) MarshalJSON() ([]byte, error) {
	return json.Marshal(hexutil.Bytes(l.data))
}

// UnmarshalJSON replaces the list's contents from a 0x-prefixed hex string
// of at most capacity bytes.
func (l *ByteList) UnmarshalJSON(input []byte) error {
	var b hexutil.Bytes
	if err := b.UnmarshalJSON(input); err != nil {
		return err
	}
	if uint64(len(b)) > l.capacity {
		return &LengthError{Len: uint64(len(b)), Max: l.capacity}
	}
	l.data = b
	return nil
}
