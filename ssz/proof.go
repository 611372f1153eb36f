package ssz

import (
	"fmt"
	"math/bits"
)

// Generalized indices address nodes in a canonical binary tree: the root is
// 1, the children of node g are 2g and 2g+1, and a node's depth is
// floor(log2(g)).

// GindexDepth returns the depth of a generalized index (root = 0).
func GindexDepth(g uint64) int {
	return bits.Len64(g) - 1
}

// GindexSibling returns the sibling of a generalized index.
func GindexSibling(g uint64) uint64 {
	return g ^ 1
}

// GindexParent returns the parent of a generalized index.
func GindexParent(g uint64) uint64 {
	return g >> 1
}

// GindexChild returns the left or right child of a generalized index.
func GindexChild(g uint64, right bool) uint64 {
	c := g << 1
	if right {
		c |= 1
	}
	return c
}

// ElementGindex returns the generalized index of the i-th element slot of a
// bounded container whose own root sits at parent. Basic elements share
// leaves according to the packing factor; composite elements map one to a
// leaf. mixinLength must be true for variable shapes, whose data subtree is
// wrapped by the length mix-in node.
func ElementGindex(parent, i, capacity uint64, elemSize int, kind TreeHashKind, mixinLength bool) uint64 {
	pos := i
	if kind == KindBasic {
		pos = i / PackingFactor(kind, elemSize)
	}
	base := uint64(1)
	if mixinLength {
		base = 2
	}
	return parent*base*NextPowerOfTwo(ChunkCount(kind, capacity, elemSize)) + pos
}

// Prover generates Merkle authentication paths over a chunk tree: depth
// levels of binary hashing above len(leaves) real leaves, every leaf past
// the end being an implicit zero chunk.
//
// Each Prove call recomputes the sibling subtrees it needs from the leaves;
// nothing is shared between calls unless a cache is attached. An attached
// cache changes only the internal computation strategy, never the proofs.
type Prover struct {
	leaves [][32]byte
	depth  int

	cache  *ProofCache
	treeID [32]byte
}

// NewProver creates a Prover for the given leaves and tree depth. The leaf
// slice is retained, not copied.
func NewProver(leaves [][32]byte, depth int) *Prover {
	return &Prover{leaves: leaves, depth: depth}
}

// WithCache attaches a subtree-root cache. treeID must uniquely identify the
// leaf contents (the container's own hash tree root serves); entries are
// shared between provers using the same cache and treeID.
func (p *Prover) WithCache(c *ProofCache, treeID [32]byte) *Prover {
	p.cache = c
	p.treeID = treeID
	return p
}

// Root returns the root of the prover's tree.
func (p *Prover) Root() [32]byte {
	return MerkleizeToDepth(p.leaves, p.depth)
}

// Prove returns the authentication path for the node at the given
// generalized index: one sibling root per level, ordered from the target's
// level up to (but not including) the root. Gindex 0 and indices below the
// leaf level are rejected.
func (p *Prover) Prove(gindex uint64) ([][32]byte, error) {
	if gindex == 0 {
		return nil, ErrInvalidIndex
	}
	if GindexDepth(gindex) > p.depth {
		return nil, fmt.Errorf("%w: gindex %d below leaf level of depth-%d tree", ErrInvalidIndex, gindex, p.depth)
	}
	proof := make([][32]byte, 0, GindexDepth(gindex))
	for g := gindex; g > 1; g = GindexParent(g) {
		proof = append(proof, p.nodeRoot(GindexSibling(g)))
	}
	return proof, nil
}

// nodeRoot computes the subtree root at the given generalized index. A
// subtree lying entirely beyond the real leaves is an all-zero subtree and
// resolves from the precomputed table without hashing.
func (p *Prover) nodeRoot(g uint64) [32]byte {
	d := GindexDepth(g)
	height := p.depth - d
	start := (g - 1<<d) << height
	if start >= uint64(len(p.leaves)) {
		return ZeroHash(height)
	}

	if p.cache != nil {
		if root, ok := p.cache.Get(p.treeID, g); ok {
			return root
		}
	}

	end := min(start+1<<height, uint64(len(p.leaves)))
	root := MerkleizeToDepth(p.leaves[start:end], height)
	if p.cache != nil {
		p.cache.Put(p.treeID, g, root)
	}
	return root
}
