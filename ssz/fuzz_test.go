package ssz

import (
	"bytes"
	"testing"
)

// FuzzDecodeVariableSeq checks that the offset-table decoder never panics on
// hostile input, and that every accepted input is the canonical encoding of
// the items it decodes to.
func FuzzDecodeVariableSeq(f *testing.F) {
	f.Add([]byte(nil), uint64(8))
	f.Add([]byte{0, 0, 0, 0}, uint64(8))
	f.Add([]byte{4, 0, 0, 0, 1, 2, 3}, uint64(8))
	f.Add(mustMarshalVariableSeqFuzz([][]byte{{1, 2, 3}, {}, {4}}), uint64(8))
	f.Add([]byte{8, 0, 0, 0, 7, 0, 0, 0, 9, 9}, uint64(8))

	f.Fuzz(func(t *testing.T, data []byte, maxItems uint64) {
		if maxItems > 1<<20 {
			maxItems %= 1 << 20
		}
		items, err := DecodeVariableSeq(data, maxItems)
		if err != nil {
			return
		}
		if uint64(len(items)) > maxItems {
			t.Fatalf("decoded %d items with maximum %d", len(items), maxItems)
		}
		reenc, err := MarshalVariableSeq(items)
		if err != nil {
			t.Fatalf("re-encoding decoded items: %v", err)
		}
		if !bytes.Equal(reenc, data) {
			t.Fatalf("accepted non-canonical input %x, re-encodes to %x", data, reenc)
		}
	})
}

func mustMarshalVariableSeqFuzz(items [][]byte) []byte {
	enc, err := MarshalVariableSeq(items)
	if err != nil {
		panic(err)
	}
	return enc
}

// FuzzMerkleize checks that merkleization of arbitrary serialized bytes
// matches the naive full-tree computation for small depths.
func FuzzMerkleize(f *testing.F) {
	f.Add([]byte(nil), 3)
	f.Add([]byte{1, 2, 3}, 0)
	f.Add(make([]byte, 100), 4)

	f.Fuzz(func(t *testing.T, serialized []byte, rawDepth int) {
		depth := int(uint(rawDepth) % 8)
		if len(serialized) > (1<<depth)*BytesPerChunk {
			serialized = serialized[:(1<<depth)*BytesPerChunk]
		}
		chunks := Pack(serialized)
		got := MerkleizeToDepth(chunks, depth)
		want := naiveRoot(chunks, depth)
		if got != want {
			t.Fatalf("MerkleizeToDepth = %x, naive = %x", got, want)
		}
	})
}
