// Package basen converts byte sequences to and from text in radix 2, 16, 32
// and 64.
//
// Every encoding splits the input into k-bit groups, most significant bit
// first, and maps each group through a 2^k character alphabet:
//
//	Base2   k=1  01                                no padding
//	Base16  k=4  0123456789ABCDEF                  no padding, case-insensitive
//	Base32  k=5  0123456789ABCDFGHJKLMNPQRSTVWXYZ  '=' padding, case-insensitive
//	Base64  k=6  RFC 4648 standard alphabet        '=' padding
//
// The Base32 alphabet omits the vowels E, I, O and U so that encoded values
// never spell words.
//
// Decoding ignores whitespace, so text produced by EncodeIndented decodes to
// the same bytes as the unwrapped form. The final character must not carry
// non-zero filler bits; each byte sequence therefore has exactly one encoding.
//
// Custom encodings are built with NewEncoding.
package basen
