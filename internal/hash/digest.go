// Package hash provides the deterministic byte digest used by the universal
// hash family before its randomized reduction.
package hash

import "github.com/cespare/xxhash/v2"

// Digest computes the xxHash64 of data.
func Digest(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// DigestString computes the xxHash64 of s without copying it.
func DigestString(s string) uint64 {
	return xxhash.Sum64String(s)
}
