package ssztypes

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVariableListFromSeq(t *testing.T) {
	l, err := VariableListFromSeq(Uint64, slices.Values([]uint64{1, 2, 3}), 4)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2, 3}, l.Elements())
	require.Equal(t, uint64(4), l.Capacity())

	// The bound is enforced while draining, not after.
	_, err = VariableListFromSeq(Uint64, slices.Values([]uint64{1, 2, 3}), 2)
	var lenErr *LengthError
	require.ErrorAs(t, err, &lenErr)
	require.Equal(t, uint64(3), lenErr.Len)
	require.Equal(t, uint64(2), lenErr.Max)

	empty, err := VariableListFromSeq(Uint64, slices.Values([]uint64(nil)), 4)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Len())
}

func TestFixedVectorFromSeq(t *testing.T) {
	v, err := FixedVectorFromSeq(Uint64, slices.Values([]uint64{1, 2, 3}), 3)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2, 3}, v.Elements())

	// Too many elements fails on the first element past the bound.
	_, err = FixedVectorFromSeq(Uint64, slices.Values([]uint64{1, 2, 3, 4}), 3)
	var lenErr *LengthError
	require.ErrorAs(t, err, &lenErr)
	require.Equal(t, uint64(4), lenErr.Len)
	require.Equal(t, uint64(3), lenErr.Max)

	// Too few elements is a shape mismatch reported with the actual count.
	_, err = FixedVectorFromSeq(Uint64, slices.Values([]uint64{1, 2}), 3)
	require.ErrorAs(t, err, &lenErr)
	require.Equal(t, uint64(2), lenErr.Len)
	require.Equal(t, uint64(3), lenErr.Max)
}
