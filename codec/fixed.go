package codec

import (
	"math"

	"github.com/arloliu/canon/buffer"
)

// Canonical widths of the fixed-size scalar types, in bytes.
const (
	BoolSize    = 1
	Int16Size   = 2
	Int32Size   = 4
	Int64Size   = 8
	Float64Size = 8
)

// PutBool writes v at dst[offset] as 0x01 (true) or 0x00 (false).
func PutBool(dst []byte, offset int, v bool) (int, error) {
	var b uint8
	if v {
		b = 1
	}
	if err := buffer.PutUint8(dst, offset, b); err != nil {
		return 0, err
	}

	return BoolSize, nil
}

// BoolToBytes returns the 1-byte canonical encoding of v.
func BoolToBytes(v bool) []byte {
	buf := make([]byte, BoolSize)
	_, _ = PutBool(buf, 0, v)

	return buf
}

// BoolAt decodes the byte at data[offset]; any non-zero byte is true.
func BoolAt(data []byte, offset int) (bool, error) {
	b, err := buffer.Uint8(data, offset)
	if err != nil {
		return false, err
	}

	return b != 0, nil
}

// BoolFromBytes decodes a bool from the start of data.
func BoolFromBytes(data []byte) (bool, error) {
	return BoolAt(data, 0)
}

// PutInt16 writes v big-endian at dst[offset:offset+2].
func PutInt16(dst []byte, offset int, v int16) (int, error) {
	if err := buffer.PutUint16(dst, offset, uint16(v)); err != nil { //nolint:gosec
		return 0, err
	}

	return Int16Size, nil
}

// Int16ToBytes returns the 2-byte canonical encoding of v.
func Int16ToBytes(v int16) []byte {
	buf := make([]byte, Int16Size)
	_, _ = PutInt16(buf, 0, v)

	return buf
}

// Int16At decodes a big-endian int16 from data[offset:offset+2].
func Int16At(data []byte, offset int) (int16, error) {
	u, err := buffer.Uint16(data, offset)
	if err != nil {
		return 0, err
	}

	return int16(u), nil //nolint:gosec
}

// Int16FromBytes decodes an int16 from the start of data.
func Int16FromBytes(data []byte) (int16, error) {
	return Int16At(data, 0)
}

// PutInt32 writes v big-endian at dst[offset:offset+4].
func PutInt32(dst []byte, offset int, v int32) (int, error) {
	if err := buffer.PutUint32(dst, offset, uint32(v)); err != nil { //nolint:gosec
		return 0, err
	}

	return Int32Size, nil
}

// Int32ToBytes returns the 4-byte canonical encoding of v.
func Int32ToBytes(v int32) []byte {
	buf := make([]byte, Int32Size)
	_, _ = PutInt32(buf, 0, v)

	return buf
}

// Int32At decodes a big-endian int32 from data[offset:offset+4].
func Int32At(data []byte, offset int) (int32, error) {
	u, err := buffer.Uint32(data, offset)
	if err != nil {
		return 0, err
	}

	return int32(u), nil //nolint:gosec
}

// Int32FromBytes decodes an int32 from the start of data.
func Int32FromBytes(data []byte) (int32, error) {
	return Int32At(data, 0)
}

// PutInt64 writes v big-endian at dst[offset:offset+8].
func PutInt64(dst []byte, offset int, v int64) (int, error) {
	if err := buffer.PutUint64(dst, offset, uint64(v)); err != nil { //nolint:gosec
		return 0, err
	}

	return Int64Size, nil
}

// Int64ToBytes returns the 8-byte canonical encoding of v.
func Int64ToBytes(v int64) []byte {
	buf := make([]byte, Int64Size)
	_, _ = PutInt64(buf, 0, v)

	return buf
}

// Int64At decodes a big-endian int64 from data[offset:offset+8].
func Int64At(data []byte, offset int) (int64, error) {
	u, err := buffer.Uint64(data, offset)
	if err != nil {
		return 0, err
	}

	return int64(u), nil //nolint:gosec
}

// Int64FromBytes decodes an int64 from the start of data.
func Int64FromBytes(data []byte) (int64, error) {
	return Int64At(data, 0)
}

// PutFloat64 writes the IEEE-754 bit pattern of v big-endian at dst[offset:offset+8].
//
// The raw bits are kept, so NaN payloads and negative zero survive a round trip.
func PutFloat64(dst []byte, offset int, v float64) (int, error) {
	if err := buffer.PutUint64(dst, offset, math.Float64bits(v)); err != nil {
		return 0, err
	}

	return Float64Size, nil
}

// Float64ToBytes returns the 8-byte canonical encoding of v.
func Float64ToBytes(v float64) []byte {
	buf := make([]byte, Float64Size)
	_, _ = PutFloat64(buf, 0, v)

	return buf
}

// Float64At decodes an IEEE-754 float64 from data[offset:offset+8].
func Float64At(data []byte, offset int) (float64, error) {
	u, err := buffer.Uint64(data, offset)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(u), nil
}

// Float64FromBytes decodes a float64 from the start of data.
func Float64FromBytes(data []byte) (float64, error) {
	return Float64At(data, 0)
}
