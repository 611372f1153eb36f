package ssztypes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eth2030/ssztypes/ssz"
)

func TestNewFixedVector(t *testing.T) {
	v, err := NewFixedVector(Uint64, []uint64{1, 2, 3, 4}, 4)
	require.NoError(t, err)
	require.Equal(t, 4, v.Len())
	require.Equal(t, uint64(4), v.Capacity())
	require.True(t, v.FixedLength())

	_, err = NewFixedVector(Uint64, []uint64{1, 2, 3}, 4)
	var lenErr *LengthError
	require.ErrorAs(t, err, &lenErr)
	require.Equal(t, uint64(3), lenErr.Len)
	require.Equal(t, uint64(4), lenErr.Max)

	_, err = NewFixedVector(Uint64, []uint64{1, 2, 3, 4, 5}, 4)
	require.Error(t, err)
}

func TestFixedVectorRepeat(t *testing.T) {
	v := FixedVectorRepeat(Uint8, 7, 5)
	require.Equal(t, 5, v.Len())
	for i := 0; i < 5; i++ {
		require.Equal(t, uint8(7), v.Get(i))
	}
}

func TestFixedVectorGetSet(t *testing.T) {
	v, err := NewFixedVector(Uint64, []uint64{1, 2, 3, 4}, 4)
	require.NoError(t, err)

	v.Set(2, 99)
	require.Equal(t, uint64(99), v.Get(2))
	require.Equal(t, []uint64{1, 2, 99, 4}, v.Elements())
	require.Panics(t, func() { v.Get(4) })
	require.Panics(t, func() { v.Set(4, 0) })
}

func TestFixedVectorRoundTrip(t *testing.T) {
	v, err := NewFixedVector(Uint64, []uint64{10, 20, 30, 40, 50}, 5)
	require.NoError(t, err)
	require.Equal(t, 40, v.SizeSSZ())

	enc, err := v.MarshalSSZ()
	require.NoError(t, err)
	require.Len(t, enc, 40)

	dec, err := FixedVectorFromSSZ(Uint64, enc, 5)
	require.NoError(t, err)
	require.True(t, EqualFixed(v, dec))
}

func TestFixedVectorFromSSZErrors(t *testing.T) {
	// A vector always occupies bytes; empty input can never decode.
	_, err := FixedVectorFromSSZ(Uint64, nil, 4)
	require.ErrorIs(t, err, ssz.InvalidByteLengthError{Len: 0, Expected: 1})

	// Element count must equal the capacity exactly.
	_, err = FixedVectorFromSSZ(Uint64, make([]byte, 24), 4)
	require.ErrorIs(t, err, ssz.ErrBytesInvalid)
	_, err = FixedVectorFromSSZ(Uint64, make([]byte, 40), 4)
	require.ErrorIs(t, err, ssz.ErrBytesInvalid)

	// Input must divide evenly by the element size.
	_, err = FixedVectorFromSSZ(Uint64, make([]byte, 33), 4)
	require.ErrorIs(t, err, ssz.ErrBytesInvalid)
}

func TestFixedVectorHashTreeRoot(t *testing.T) {
	// 4 uint64s pack into a single chunk: the root is the packed chunk, no
	// length mix-in.
	v, err := NewFixedVector(Uint64, []uint64{1, 2, 3, 4}, 4)
	require.NoError(t, err)

	root, err := v.HashTreeRoot()
	require.NoError(t, err)

	enc, err := v.MarshalSSZ()
	require.NoError(t, err)
	require.Equal(t, ssz.Pack(enc)[0], root)

	// Determinism.
	again, err := v.HashTreeRoot()
	require.NoError(t, err)
	require.Equal(t, root, again)
}

func TestFixedVectorCompositeRoot(t *testing.T) {
	elems := [][32]byte{{1}, {2}, {3}}
	v, err := NewFixedVector(Bytes32, elems, 3)
	require.NoError(t, err)

	root, err := v.HashTreeRoot()
	require.NoError(t, err)
	// Composite elements are one leaf each; capacity 3 rounds to a
	// depth-2 tree.
	require.Equal(t, ssz.MerkleizeToDepth(elems, 2), root)
}

func TestFixedVectorProve(t *testing.T) {
	elems := make([]uint64, 8)
	for i := range elems {
		elems[i] = uint64(i)
	}
	v, err := NewFixedVector(Uint64, elems, 8)
	require.NoError(t, err)

	root, err := v.HashTreeRoot()
	require.NoError(t, err)

	proof, err := v.Prove(5)
	require.NoError(t, err)
	require.Len(t, proof, 1)

	// Element 5 packs into the second of two chunks; recombining the leaf
	// with its path must land back on the root.
	enc, err := v.MarshalSSZ()
	require.NoError(t, err)
	chunks := ssz.Pack(enc)
	gindex := v.ElementGindex(1, 5)
	require.Equal(t, uint64(3), gindex)
	require.Equal(t, root, recombineProof(chunks[1], proof, gindex))

	_, err = v.Prove(8)
	require.ErrorIs(t, err, ssz.ErrInvalidIndex)
}

func TestFixedVectorVariableElements(t *testing.T) {
	elems := []blob{newBlob(1, 2, 3), newBlob(), newBlob(4)}
	v, err := NewFixedVector(blobType, elems, 3)
	require.NoError(t, err)
	require.False(t, v.FixedLength())
	// 3 offsets plus 4 payload bytes.
	require.Equal(t, 16, v.SizeSSZ())

	enc, err := v.MarshalSSZ()
	require.NoError(t, err)

	dec, err := FixedVectorFromSSZ(blobType, enc, 3)
	require.NoError(t, err)
	require.Equal(t, 3, dec.Len())
	for i := range elems {
		require.Equal(t, elems[i].data, dec.Get(i).data)
	}

	// Fewer items than the capacity is a shape mismatch.
	short, err := NewFixedVector(blobType, elems[:2], 2)
	require.NoError(t, err)
	shortEnc, err := short.MarshalSSZ()
	require.NoError(t, err)
	_, err = FixedVectorFromSSZ(blobType, shortEnc, 3)
	require.ErrorIs(t, err, ssz.ErrBytesInvalid)
}

func TestEqualFixed(t *testing.T) {
	a, err := NewFixedVector(Uint64, []uint64{1, 2, 3}, 3)
	require.NoError(t, err)
	b, err := NewFixedVector(Uint64, []uint64{1, 2, 3}, 3)
	require.NoError(t, err)
	c, err := NewFixedVector(Uint64, []uint64{1, 2, 4}, 3)
	require.NoError(t, err)

	require.True(t, EqualFixed(a, b))
	require.False(t, EqualFixed(a, c))
}

func TestFixedVectorJSON(t *testing.T) {
	v, err := NewFixedVector(Uint64, []uint64{1, 2, 3}, 3)
	require.NoError(t, err)

	enc, err := json.Marshal(v)
	require.NoError(t, err)
	require.JSONEq(t, `[1,2,3]`, string(enc))

	dst := FixedVectorRepeat(Uint64, 0, 3)
	require.NoError(t, json.Unmarshal(enc, dst))
	require.True(t, EqualFixed(v, dst))

	// Array length must match the capacity.
	err = json.Unmarshal([]byte(`[1,2]`), dst)
	var lenErr *LengthError
	require.ErrorAs(t, err, &lenErr)

	// A zero-value vector has no element type to decode with.
	var zero FixedVector[uint64]
	require.Error(t, json.Unmarshal(enc, &zero))
}
