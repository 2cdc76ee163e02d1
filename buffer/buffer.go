// Package buffer provides bounds-checked access to caller-owned byte buffers.
//
// Every writer validates the destination range before touching it, so a call
// either writes the full value or leaves the buffer unmodified and returns an
// error wrapping errs.ErrOutOfBounds. Multi-byte integers use the canonical
// big-endian layout from the endian package.
//
// The package also carries the byte slice utilities used by in-memory index
// structures: Copy, Equal, Compare and HashCode.
//
// All functions are safe for concurrent use as long as callers do not mutate
// the same buffer concurrently.
package buffer

import (
	"bytes"
	"fmt"

	"github.com/arloliu/canon/errs"
)

// Alloc allocates a zeroed buffer of exactly n bytes.
func Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative buffer length %d", errs.ErrInvalidParameter, n)
	}

	return make([]byte, n), nil
}

// CheckRange verifies that [offset, offset+width) lies within a buffer of length size.
//
// Returns an error wrapping errs.ErrOutOfBounds when the range does not fit,
// or errs.ErrInvalidParameter when width is negative.
func CheckRange(size, offset, width int) error {
	if width < 0 {
		return fmt.Errorf("%w: negative width %d", errs.ErrInvalidParameter, width)
	}
	if offset < 0 || offset > size || width > size-offset {
		return fmt.Errorf("%w: range [%d, %d) exceeds buffer length %d", errs.ErrOutOfBounds, offset, offset+width, size)
	}

	return nil
}

// Write copies src into dst starting at offset.
//
// Parameters:
//   - dst: Destination buffer (not grown)
//   - offset: Index of the first destination byte
//   - src: Bytes to write
//
// Returns:
//   - error: errs.ErrOutOfBounds if offset+len(src) > len(dst); dst is untouched
func Write(dst []byte, offset int, src []byte) error {
	if err := CheckRange(len(dst), offset, len(src)); err != nil {
		return err
	}
	copy(dst[offset:], src)

	return nil
}

// Read returns the width bytes of src starting at offset.
//
// The returned slice aliases src. Use ReadCopy for an independent copy.
func Read(src []byte, offset, width int) ([]byte, error) {
	if err := CheckRange(len(src), offset, width); err != nil {
		return nil, err
	}

	return src[offset : offset+width : offset+width], nil
}

// ReadCopy is like Read but returns a copy that does not alias src.
func ReadCopy(src []byte, offset, width int) ([]byte, error) {
	b, err := Read(src, offset, width)
	if err != nil {
		return nil, err
	}

	return Copy(b), nil
}

// Copy returns an independent duplicate of b. A nil slice stays nil.
func Copy(b []byte) []byte {
	if b == nil {
		return nil
	}

	return bytes.Clone(b)
}

// Equal reports whether a and b hold the same bytes.
func Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// Compare compares a and b lexicographically as unsigned bytes.
//
// A proper prefix sorts before the longer slice. The result is -1, 0 or 1.
func Compare(a, b []byte) int {
	return bytes.Compare(a, b)
}

// HashCode returns a deterministic 32-bit digest of the contents of b.
//
// The digest is the polynomial accumulation h = 31*h + int8(b[i]) seeded with 1,
// which keeps it stable across processes and platforms. It is meant for
// in-memory indexing; see the uhash package for a randomized hash family.
func HashCode(b []byte) int32 {
	if b == nil {
		return 0
	}

	h := int32(1)
	for _, c := range b {
		h = 31*h + int32(int8(c))
	}

	return h
}
