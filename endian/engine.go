// Package endian provides the byte order engine used for canonical encodings.
//
// The EndianEngine interface combines the ByteOrder and AppendByteOrder
// interfaces from encoding/binary, so a single value can both write into a
// preallocated slice and append to a growing one.
//
// Canonical layouts in this module are always big-endian, independent of the
// host byte order, so that lexicographic comparison of encoded non-negative
// integers matches their numeric order:
//
//	engine := endian.Canonical()
//	engine.PutUint32(buf[offset:], v)
//	buf = engine.AppendUint64(buf, w)
//
// # Thread Safety
//
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Canonical returns the engine used for every canonical byte layout (big-endian).
func Canonical() EndianEngine {
	return binary.BigEndian
}
