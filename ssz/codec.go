package ssz

import (
	"encoding/binary"
	"fmt"
	"math"
)

// --- Basic type encoding ---

// MarshalBool encodes a boolean as a single byte: 0x01 for true, 0x00 for false.
func MarshalBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// MarshalUint8 encodes a uint8 as a single byte.
func MarshalUint8(v uint8) []byte {
	return []byte{v}
}

// MarshalUint16 encodes a uint16 as 2 bytes little-endian.
func MarshalUint16(v uint16) []byte {
	return binary.LittleEndian.AppendUint16(nil, v)
}

// MarshalUint32 encodes a uint32 as 4 bytes little-endian.
func MarshalUint32(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

// MarshalUint64 encodes a uint64 as 8 bytes little-endian.
func MarshalUint64(v uint64) []byte {
	return binary.LittleEndian.AppendUint64(nil, v)
}

// MarshalUint256 encodes a 256-bit unsigned integer, given as [4]uint64
// little-endian limbs, into 32 bytes little-endian.
func MarshalUint256(limbs [4]uint64) []byte {
	b := make([]byte, 32)
	for i, limb := range limbs {
		binary.LittleEndian.PutUint64(b[i*8:], limb)
	}
	return b
}

// --- Basic type decoding ---

// UnmarshalBool decodes a boolean from a single byte.
func UnmarshalBool(data []byte) (bool, error) {
	if len(data) != 1 {
		return false, ErrSize
	}
	switch data[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrInvalidBool
	}
}

// UnmarshalUint8 decodes a uint8 from a single byte.
func UnmarshalUint8(data []byte) (uint8, error) {
	if len(data) != 1 {
		return 0, ErrSize
	}
	return data[0], nil
}

// UnmarshalUint16 decodes a uint16 from 2 bytes little-endian.
func UnmarshalUint16(data []byte) (uint16, error) {
	if len(data) != 2 {
		return 0, ErrSize
	}
	return binary.LittleEndian.Uint16(data), nil
}

// UnmarshalUint32 decodes a uint32 from 4 bytes little-endian.
func UnmarshalUint32(data []byte) (uint32, error) {
	if len(data) != 4 {
		return 0, ErrSize
	}
	return binary.LittleEndian.Uint32(data), nil
}

// UnmarshalUint64 decodes a uint64 from 8 bytes little-endian.
func UnmarshalUint64(data []byte) (uint64, error) {
	if len(data) != 8 {
		return 0, ErrSize
	}
	return binary.LittleEndian.Uint64(data), nil
}

// UnmarshalUint256 decodes a 256-bit unsigned integer from 32 bytes
// little-endian, returning [4]uint64 little-endian limbs.
func UnmarshalUint256(data []byte) ([4]uint64, error) {
	if len(data) != 32 {
		return [4]uint64{}, ErrSize
	}
	var limbs [4]uint64
	for i := range limbs {
		limbs[i] = binary.LittleEndian.Uint64(data[i*8:])
	}
	return limbs, nil
}

// --- Sequence encoding ---

// MarshalFixedSeq encodes a sequence of fixed-size items by concatenating
// each item's encoding in order.
func MarshalFixedSeq(items [][]byte) []byte {
	total := 0
	for _, it := range items {
		total += len(it)
	}
	out := make([]byte, 0, total)
	for _, it := range items {
		out = append(out, it...)
	}
	return out
}

// MarshalVariableSeq encodes a sequence of variable-size items as a table of
// 4-byte little-endian offsets (one per item, measured from the start of the
// encoding) followed by the item payloads back-to-back, in order.
func MarshalVariableSeq(items [][]byte) ([]byte, error) {
	total := uint64(len(items)) * BytesPerLengthOffset
	for _, it := range items {
		total += uint64(len(it))
	}
	if total > math.MaxUint32 {
		return nil, fmt.Errorf("%w: encoding of %d bytes exceeds offset range", ErrOffset, total)
	}
	out := make([]byte, 0, total)
	offset := uint32(len(items) * BytesPerLengthOffset)
	for _, it := range items {
		out = binary.LittleEndian.AppendUint32(out, offset)
		offset += uint32(len(it))
	}
	for _, it := range items {
		out = append(out, it...)
	}
	return out, nil
}

// DecodeVariableSeq parses an offset table and returns the byte span of each
// variable-size item. maxItems bounds the item count; the offsets must be
// monotonically non-decreasing and within range. Empty input decodes to an
// empty sequence.
//
// This is the inverse of MarshalVariableSeq and the decoder behind every
// variable-element container.
func DecodeVariableSeq(data []byte, maxItems uint64) ([][]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data) < BytesPerLengthOffset {
		return nil, InvalidByteLengthError{Len: len(data), Expected: BytesPerLengthOffset}
	}

	// The first offset doubles as the size of the offset table.
	first := binary.LittleEndian.Uint32(data[:BytesPerLengthOffset])
	if first == 0 || first%BytesPerLengthOffset != 0 {
		return nil, fmt.Errorf("%w: first offset %d does not delimit an offset table", ErrOffset, first)
	}
	if uint64(first) > uint64(len(data)) {
		return nil, fmt.Errorf("%w: first offset %d beyond input of %d bytes", ErrOffset, first, len(data))
	}
	numItems := uint64(first) / BytesPerLengthOffset
	if numItems > maxItems {
		return nil, fmt.Errorf("%w: %d items, maximum %d", ErrListTooLong, numItems, maxItems)
	}

	offsets := make([]uint64, numItems+1)
	for i := uint64(0); i < numItems; i++ {
		offsets[i] = uint64(binary.LittleEndian.Uint32(data[i*BytesPerLengthOffset:]))
	}
	offsets[numItems] = uint64(len(data))

	items := make([][]byte, numItems)
	for i := uint64(0); i < numItems; i++ {
		start, end := offsets[i], offsets[i+1]
		if start > end || end > uint64(len(data)) {
			return nil, fmt.Errorf("%w: item %d spans [%d, %d) in input of %d bytes", ErrOffset, i, start, end, len(data))
		}
		item := make([]byte, end-start)
		copy(item, data[start:end])
		items[i] = item
	}
	return items, nil
}
