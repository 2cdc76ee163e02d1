package buffer

import (
	"fmt"

	"github.com/arloliu/canon/endian"
	"github.com/arloliu/canon/errs"
)

// Fixed widths of the canonical unsigned primitives, in bytes.
const (
	Uint8Size  = 1
	Uint16Size = 2
	Uint32Size = 4
	Uint64Size = 8
)

var engine = endian.Canonical()

// PutUint8 writes v at dst[offset].
func PutUint8(dst []byte, offset int, v uint8) error {
	if err := CheckRange(len(dst), offset, Uint8Size); err != nil {
		return err
	}
	dst[offset] = v

	return nil
}

// PutUint16 writes v big-endian at dst[offset:offset+2].
func PutUint16(dst []byte, offset int, v uint16) error {
	if err := CheckRange(len(dst), offset, Uint16Size); err != nil {
		return err
	}
	engine.PutUint16(dst[offset:], v)

	return nil
}

// PutUint32 writes v big-endian at dst[offset:offset+4].
func PutUint32(dst []byte, offset int, v uint32) error {
	if err := CheckRange(len(dst), offset, Uint32Size); err != nil {
		return err
	}
	engine.PutUint32(dst[offset:], v)

	return nil
}

// PutUint64 writes v big-endian at dst[offset:offset+8].
func PutUint64(dst []byte, offset int, v uint64) error {
	if err := CheckRange(len(dst), offset, Uint64Size); err != nil {
		return err
	}
	engine.PutUint64(dst[offset:], v)

	return nil
}

// Uint8 reads the byte at src[offset].
func Uint8(src []byte, offset int) (uint8, error) {
	if err := checkAvailable(src, offset, Uint8Size); err != nil {
		return 0, err
	}

	return src[offset], nil
}

// Uint16 reads a big-endian uint16 from src[offset:offset+2].
func Uint16(src []byte, offset int) (uint16, error) {
	if err := checkAvailable(src, offset, Uint16Size); err != nil {
		return 0, err
	}

	return engine.Uint16(src[offset:]), nil
}

// Uint32 reads a big-endian uint32 from src[offset:offset+4].
func Uint32(src []byte, offset int) (uint32, error) {
	if err := checkAvailable(src, offset, Uint32Size); err != nil {
		return 0, err
	}

	return engine.Uint32(src[offset:]), nil
}

// Uint64 reads a big-endian uint64 from src[offset:offset+8].
func Uint64(src []byte, offset int) (uint64, error) {
	if err := checkAvailable(src, offset, Uint64Size); err != nil {
		return 0, err
	}

	return engine.Uint64(src[offset:]), nil
}

// checkAvailable reports errs.ErrInsufficientData when fewer than width bytes
// remain after offset. A negative offset is an errs.ErrOutOfBounds condition.
func checkAvailable(src []byte, offset, width int) error {
	if offset < 0 || offset > len(src) {
		return fmt.Errorf("%w: offset %d outside buffer of length %d", errs.ErrOutOfBounds, offset, len(src))
	}
	if len(src)-offset < width {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", errs.ErrInsufficientData, width, offset, len(src)-offset)
	}

	return nil
}

// Available reports how many bytes of src remain at offset, or an error
// wrapping errs.ErrInsufficientData when fewer than need are left.
func Available(src []byte, offset, need int) (int, error) {
	if err := checkAvailable(src, offset, need); err != nil {
		return 0, err
	}

	return len(src) - offset, nil
}
