// Package codec defines the canonical byte layout of every scalar type.
//
// # Layouts
//
// Fixed-width values are big-endian and exactly as wide as their type:
//
//	bool     1 byte   0x00 = false, 0x01 = true (any non-zero decodes as true)
//	int16    2 bytes  two's complement
//	int32    4 bytes  two's complement
//	int64    8 bytes  two's complement
//	float64  8 bytes  IEEE-754 bit pattern
//
// Variable-width values carry no length prefix; the caller supplies the exact
// byte range when decoding:
//
//	big.Int          minimal two's-complement big-endian (0 → 00, -1 → FF, 128 → 00 80)
//	decimal.Decimal  [scale int32][unscaled big.Int], value = unscaled × 10^-scale
//	string           raw UTF-8
//
// # Call shapes
//
// Each type T exposes one core writer, PutT(dst, offset, v), plus thin wrappers:
// TToBytes allocates a buffer of exactly the required width and delegates to
// PutT with offset 0. Decoders come as TFromBytes(data) and TAt(data, offset)
// (with an explicit length for variable-width types). Writers never write a
// partial value: bounds are validated before the destination is touched.
//
// # Scalar sum type
//
// Scalar is a sealed interface over the eight supported variants (Bool, Int16,
// Int32, Int64, Float64, BigInt, Decimal, Text). Size, Put, Marshal and
// Unmarshal dispatch over it, and FromAny maps plain Go values onto it.
//
// # Streams
//
// Writer and Reader serialize a sequence of scalars back to back. Inside a
// stream, variable-width values are preceded by a 4-byte length so that the
// sequence can be read without external framing.
package codec
