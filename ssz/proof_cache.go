package ssz

import (
	"sync"
	"sync/atomic"
)

// ProofCache memoizes subtree roots computed during proof generation. Proof
// construction recomputes each sibling subtree from the leaves, so proving
// several indices of the same tree repeats most of the hashing; a shared
// cache lets those calls reuse each other's work.
//
// Entries are keyed by (treeID, gindex). Eviction is insertion-ordered once
// the entry limit is reached. All operations are safe for concurrent use.
type ProofCache struct {
	mu         sync.RWMutex
	maxEntries int
	roots      map[proofCacheKey][32]byte
	order      []proofCacheKey

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type proofCacheKey struct {
	treeID [32]byte
	gindex uint64
}

// ProofCacheStats holds cache performance counters.
type ProofCacheStats struct {
	Hits      uint64
	Misses    uint64
	Entries   uint64
	Evictions uint64
}

// NewProofCache creates a cache bounded to maxEntries subtree roots. If
// maxEntries <= 0 the cache stores nothing and every lookup misses.
func NewProofCache(maxEntries int) *ProofCache {
	if maxEntries < 0 {
		maxEntries = 0
	}
	return &ProofCache{
		maxEntries: maxEntries,
		roots:      make(map[proofCacheKey][32]byte),
	}
}

// Get looks up the cached root of the subtree at gindex within the tree
// identified by treeID.
func (pc *ProofCache) Get(treeID [32]byte, gindex uint64) ([32]byte, bool) {
	key := proofCacheKey{treeID: treeID, gindex: gindex}

	pc.mu.RLock()
	root, ok := pc.roots[key]
	pc.mu.RUnlock()

	if ok {
		pc.hits.Add(1)
		return root, true
	}
	pc.misses.Add(1)
	return [32]byte{}, false
}

// Put stores a subtree root, evicting the oldest entry when full.
func (pc *ProofCache) Put(treeID [32]byte, gindex uint64, root [32]byte) {
	if pc.maxEntries <= 0 {
		return
	}
	key := proofCacheKey{treeID: treeID, gindex: gindex}

	pc.mu.Lock()
	defer pc.mu.Unlock()

	if _, ok := pc.roots[key]; ok {
		pc.roots[key] = root
		return
	}
	if len(pc.roots) >= pc.maxEntries && len(pc.order) > 0 {
		oldest := pc.order[0]
		pc.order = pc.order[1:]
		delete(pc.roots, oldest)
		pc.evictions.Add(1)
	}
	pc.roots[key] = root
	pc.order = append(pc.order, key)
}

// InvalidateTree removes every entry belonging to the given treeID.
func (pc *ProofCache) InvalidateTree(treeID [32]byte) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	kept := pc.order[:0]
	for _, key := range pc.order {
		if key.treeID == treeID {
			delete(pc.roots, key)
		} else {
			kept = append(kept, key)
		}
	}
	pc.order = kept
}

// Len returns the number of cached subtree roots.
func (pc *ProofCache) Len() int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return len(pc.roots)
}

// Clear removes all entries and resets the counters.
func (pc *ProofCache) Clear() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	pc.roots = make(map[proofCacheKey][32]byte)
	pc.order = nil

	pc.hits.Store(0)
	pc.misses.Store(0)
	pc.evictions.Store(0)
}

// HitRate returns the hit rate in [0.0, 1.0], or 0.0 before any lookup.
func (pc *ProofCache) HitRate() float64 {
	hits := pc.hits.Load()
	total := hits + pc.misses.Load()
	if total == 0 {
		return 0.0
	}
	return float64(hits) / float64(total)
}

// Stats returns a snapshot of the cache counters.
func (pc *ProofCache) Stats() ProofCacheStats {
	pc.mu.RLock()
	entries := uint64(len(pc.roots))
	pc.mu.RUnlock()

	return ProofCacheStats{
		Hits:      pc.hits.Load(),
		Misses:    pc.misses.Load(),
		Entries:   entries,
		Evictions: pc.evictions.Load(),
	}
}
