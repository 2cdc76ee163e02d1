// Package canon converts values to a single, platform-independent byte
// representation and builds on it with base-N text encodings and a universal
// hash family.
//
// # Core Features
//
//   - Big-endian fixed-width codecs for bool, int16, int32, int64 and float64
//   - Minimal two's-complement big integers and scale-preserving decimals
//   - Base-2, base-16, base-32 and base-64 text with optional line wrapping
//   - Carter–Wegman universal hashing over the canonical bytes
//   - Bounds-checked buffer primitives that never write a partial value
//
// # Basic Usage
//
// Encoding and decoding a scalar:
//
//	import "github.com/arloliu/canon"
//
//	data, _ := canon.Marshal(int32(42))      // 00 00 00 2A
//	v, _ := canon.Unmarshal(codec.KindInt32, data)
//
// Text transport:
//
//	text := canon.EncodeText(data, 64)      // "AAAAKg=="
//	raw, _ := canon.DecodeText(text, 64)
//
// Bucketing:
//
//	h, _ := canon.NewHash(uhash.WithHashWidth(10))
//	bucket, _ := h.HashValue("user-1234")    // in [0, 1024)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec, basen
// and uhash packages. For fine-grained control use those packages directly.
package canon

import (
	"fmt"

	"github.com/arloliu/canon/basen"
	"github.com/arloliu/canon/codec"
	"github.com/arloliu/canon/errs"
	"github.com/arloliu/canon/internal/hash"
	"github.com/arloliu/canon/random"
	"github.com/arloliu/canon/uhash"
)

// Marshal returns the canonical encoding of v.
//
// v may be a codec.Scalar or any Go value accepted by codec.FromAny.
// Unsupported types return an error wrapping errs.ErrInvalidParameter.
func Marshal(v any) ([]byte, error) {
	s, err := codec.FromAny(v)
	if err != nil {
		return nil, err
	}

	return codec.Marshal(s)
}

// Unmarshal decodes data as a scalar of the given kind.
func Unmarshal(kind codec.Kind, data []byte) (codec.Scalar, error) {
	return codec.Unmarshal(kind, data)
}

// Encoding returns the predefined encoding for radix 2, 16, 32 or 64.
func Encoding(radix int) (*basen.Encoding, error) {
	switch radix {
	case 2:
		return basen.Base2, nil
	case 16:
		return basen.Base16, nil
	case 32:
		return basen.Base32, nil
	case 64:
		return basen.Base64, nil
	default:
		return nil, fmt.Errorf("%w: unsupported radix %d", errs.ErrInvalidParameter, radix)
	}
}

// EncodeText returns data encoded in the given radix. It panics for a radix
// other than 2, 16, 32 or 64.
func EncodeText(data []byte, radix int) string {
	enc, err := Encoding(radix)
	if err != nil {
		panic(err)
	}

	return enc.Encode(data)
}

// DecodeText decodes text written in the given radix.
func DecodeText(text string, radix int) ([]byte, error) {
	enc, err := Encoding(radix)
	if err != nil {
		return nil, err
	}

	return enc.Decode(text)
}

// NewHash creates a universal hash function seeded from the process-wide
// random source.
//
// Example:
//
//	h, err := canon.NewHash(uhash.WithModulus(1000))
//	if err != nil {
//	    return err
//	}
//	bucket, _ := h.HashValue(int64(7))
func NewHash(opts ...uhash.Option) (*uhash.Function, error) {
	return uhash.New(random.Default(), opts...)
}

// Fingerprint returns the 64-bit xxHash of the canonical encoding of v.
//
// Unlike a uhash.Function, the fingerprint is fixed: the same value yields the
// same fingerprint in every process.
func Fingerprint(v any) (uint64, error) {
	data, err := Marshal(v)
	if err != nil {
		return 0, err
	}

	return hash.Digest(data), nil
}
