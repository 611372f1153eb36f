package ssztypes

import (
	"fmt"

	"github.com/eth2030/ssztypes/ssz"
)

// blob is the variable-size composite element used across the tests: an
// opaque payload of up to 96 bytes, encoded as its raw bytes and hashed
// like a byte list of that bound.
const blobBound = 96

type blob struct {
	data []byte
}

var blobType = Object[blob, *blob](0)

func newBlob(data ...byte) blob {
	return blob{data: data}
}

func (b *blob) SizeSSZ() int { return len(b.data) }

func (b *blob) MarshalSSZ() ([]byte, error) {
	return append([]byte(nil), b.data...), nil
}

func (b *blob) UnmarshalSSZ(input []byte) error {
	if len(input) > blobBound {
		return fmt.Errorf("%w: blob of %d bytes exceeds maximum of %d", ssz.ErrBytesInvalid, len(input), blobBound)
	}
	b.data = append([]byte(nil), input...)
	return nil
}

func (b *blob) HashTreeRoot() ([32]byte, error) {
	depth := ssz.Depth(ssz.ChunkCount(ssz.KindBasic, blobBound, 1))
	root := ssz.MerkleizeToDepth(ssz.Pack(b.data), depth)
	return ssz.MixInLength(root, uint64(len(b.data))), nil
}

// recombineProof folds a leaf back up along its authentication path,
// guided by the leaf's generalized index.
func recombineProof(leaf [32]byte, proof [][32]byte, gindex uint64) [32]byte {
	node := leaf
	for _, sibling := range proof {
		if gindex&1 == 1 {
			node = ssz.ConcatHash(sibling, node)
		} else {
			node = ssz.ConcatHash(node, sibling)
		}
		gindex >>= 1
	}
	return node
}
