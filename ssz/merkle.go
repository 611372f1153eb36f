package ssz

import (
	"encoding/binary"
	"math/bits"
	"sync"

	"github.com/minio/sha256-simd"
)

// maxZeroHashDepth is the maximum depth of precomputed zero-subtree hashes.
// 64 levels supports trees of up to 2^64 leaves.
const maxZeroHashDepth = 64

// zeroHashTable[0] is the zero chunk, zeroHashTable[d] is the root of an
// all-zero subtree of depth d.
var (
	zeroHashOnce  sync.Once
	zeroHashTable [maxZeroHashDepth + 1][32]byte
)

func initZeroHashes() {
	zeroHashOnce.Do(func() {
		for d := 1; d <= maxZeroHashDepth; d++ {
			zeroHashTable[d] = hashPair(zeroHashTable[d-1], zeroHashTable[d-1])
		}
	})
}

// hashPair combines two 32-byte inputs using SHA-256.
func hashPair(a, b [32]byte) [32]byte {
	var combined [64]byte
	copy(combined[:32], a[:])
	copy(combined[32:], b[:])
	return sha256.Sum256(combined[:])
}

// Hash computes SHA-256 over an arbitrary byte slice.
func Hash(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// ConcatHash computes SHA-256(a || b) for two 32-byte inputs. Exported so
// callers can recompute roots from proofs.
func ConcatHash(a, b [32]byte) [32]byte {
	return hashPair(a, b)
}

// ZeroHash returns the root of an all-zero subtree at the given depth.
// Depth 0 is a 32-byte zero chunk.
func ZeroHash(depth int) [32]byte {
	initZeroHashes()
	if depth < 0 {
		return [32]byte{}
	}
	if depth > maxZeroHashDepth {
		// Beyond the cache the levels keep folding the same way.
		h := zeroHashTable[maxZeroHashDepth]
		for d := maxZeroHashDepth; d < depth; d++ {
			h = hashPair(h, h)
		}
		return h
	}
	return zeroHashTable[depth]
}

// NextPowerOfTwo returns the smallest power of two >= n, with a minimum of 1.
// n must not exceed 2^63.
func NextPowerOfTwo(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len64(n-1)
}

// Depth returns the height of the tree needed to hold limit leaves:
// ceil(log2(limit)), with Depth(0) == Depth(1) == 0. Unlike NextPowerOfTwo
// it stays exact for limits all the way up to 2^64-1.
func Depth(limit uint64) int {
	if limit <= 1 {
		return 0
	}
	return bits.Len64(limit - 1)
}

// Pack splits serialized values into 32-byte chunks, right-padding the last
// chunk with zeros. Empty input packs to a single zero chunk.
func Pack(serialized []byte) [][32]byte {
	if len(serialized) == 0 {
		return [][32]byte{{}}
	}
	numChunks := (len(serialized) + BytesPerChunk - 1) / BytesPerChunk
	chunks := make([][32]byte, numChunks)
	for i := range chunks {
		end := min((i+1)*BytesPerChunk, len(serialized))
		copy(chunks[i][:], serialized[i*BytesPerChunk:end])
	}
	return chunks
}

// MerkleizeToDepth computes the root of a binary tree of height depth whose
// first len(chunks) leaves are the given chunks and whose remaining leaves
// are zero chunks.
//
// Only the occupied part of each layer is hashed; a level whose right half
// is entirely zero padding is folded against the precomputed zero-subtree
// root for that level. The result is bit-for-bit identical to hashing the
// full 2^depth-leaf tree, so trees whose declared capacity exceeds the
// addressable range never materialize.
func MerkleizeToDepth(chunks [][32]byte, depth int) [32]byte {
	initZeroHashes()
	if len(chunks) == 0 {
		return ZeroHash(depth)
	}

	layer := make([][32]byte, len(chunks))
	copy(layer, chunks)
	for d := 0; d < depth; d++ {
		n := len(layer)
		next := layer[:(n+1)/2]
		for i := 0; i < n/2; i++ {
			next[i] = hashPair(layer[2*i], layer[2*i+1])
		}
		if n%2 == 1 {
			next[len(next)-1] = hashPair(layer[n-1], ZeroHash(d))
		}
		layer = next
	}
	return layer[0]
}

// Merkleize computes the Merkle root of chunks padded with zero chunks to
// the given leaf limit. A limit of 0, or any limit below the chunk count,
// uses the next power of two of the chunk count.
func Merkleize(chunks [][32]byte, limit uint64) [32]byte {
	if count := uint64(len(chunks)); limit < count {
		limit = count
	}
	return MerkleizeToDepth(chunks, Depth(limit))
}

// MixInLength mixes a Merkle root with a length value: the length is encoded
// little-endian into a 32-byte chunk and hashed with the root. Used by all
// variable-size shapes to distinguish occupancy from capacity.
func MixInLength(root [32]byte, length uint64) [32]byte {
	var lengthChunk [32]byte
	binary.LittleEndian.PutUint64(lengthChunk[:8], length)
	return hashPair(root, lengthChunk)
}
