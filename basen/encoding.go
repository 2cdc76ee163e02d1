package basen

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arloliu/canon/errs"
	"github.com/arloliu/canon/internal/options"
	"github.com/arloliu/canon/internal/pool"
)

const invalidIndex = 0xFF

// Encoding is a radix-2^k text encoding defined by its alphabet.
//
// An Encoding is immutable after construction and safe for concurrent use.
type Encoding struct {
	bits            int
	alphabet        string
	decodeMap       [256]byte
	pad             rune
	lineWidth       int
	caseInsensitive bool

	// A block is the smallest run of characters that maps to whole bytes:
	// lcm(8, bits)/bits characters for lcm(8, bits)/8 bytes.
	blockChars int
	blockBytes int
}

// NewEncoding creates an encoding that maps each bits-wide group through alphabet.
//
// Parameters:
//   - bits: group width, 1 to 6
//   - alphabet: exactly 1<<bits distinct printable ASCII characters
//   - opts: WithPadding, WithLineWidth, WithCaseInsensitive
//
// Returns:
//   - *Encoding: the new encoding (unpadded, 80-character lines by default)
//   - error: wraps errs.ErrInvalidParameter for an unusable configuration
func NewEncoding(bits int, alphabet string, opts ...Option) (*Encoding, error) {
	if bits < 1 || bits > 6 {
		return nil, fmt.Errorf("%w: group width %d outside 1..6", errs.ErrInvalidParameter, bits)
	}
	if len(alphabet) != 1<<bits {
		return nil, fmt.Errorf("%w: alphabet for %d-bit groups needs %d characters, got %d",
			errs.ErrInvalidParameter, bits, 1<<bits, len(alphabet))
	}

	e := &Encoding{
		bits:      bits,
		alphabet:  alphabet,
		pad:       NoPadding,
		lineWidth: DefaultLineWidth,
	}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	for i := range e.decodeMap {
		e.decodeMap[i] = invalidIndex
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if c <= ' ' || c > '~' {
			return nil, fmt.Errorf("%w: alphabet character %q at %d is not printable ASCII", errs.ErrInvalidParameter, c, i)
		}
		for _, k := range e.decodeKeys(c) {
			if e.decodeMap[k] != invalidIndex {
				return nil, fmt.Errorf("%w: alphabet character %q at %d is not unique", errs.ErrInvalidParameter, c, i)
			}
			e.decodeMap[k] = byte(i)
		}
	}
	if e.pad != NoPadding && e.decodeMap[byte(e.pad)] != invalidIndex {
		return nil, fmt.Errorf("%w: pad character %q is part of the alphabet", errs.ErrInvalidParameter, e.pad)
	}

	l := lcm(8, bits)
	e.blockChars = l / bits
	e.blockBytes = l / 8

	return e, nil
}

// decodeKeys returns the input bytes that decode to alphabet character c.
func (e *Encoding) decodeKeys(c byte) []byte {
	if !e.caseInsensitive {
		return []byte{c}
	}

	lower, upper := byte(unicode.ToLower(rune(c))), byte(unicode.ToUpper(rune(c)))
	if lower == upper {
		return []byte{c}
	}

	return []byte{lower, upper}
}

// Bits returns the number of bits carried by each character.
func (e *Encoding) Bits() int { return e.bits }

// Alphabet returns the encoding alphabet.
func (e *Encoding) Alphabet() string { return e.alphabet }

// Padding returns the pad character, or NoPadding.
func (e *Encoding) Padding() rune { return e.pad }

// EncodedLen returns the length of the unwrapped encoding of n bytes.
func (e *Encoding) EncodedLen(n int) int {
	if e.pad == NoPadding {
		return (n*8 + e.bits - 1) / e.bits
	}

	return (n + e.blockBytes - 1) / e.blockBytes * e.blockChars
}

// Encode returns the encoding of data on a single line.
func (e *Encoding) Encode(data []byte) string {
	bb := pool.GetTextBuffer()
	defer pool.PutTextBuffer(bb)

	e.encodeTo(bb, data)

	return bb.String()
}

// EncodeIndented returns the encoding of data split into lines.
//
// Output that fits in one line width is returned as by Encode. Longer output
// is broken into lines of the line width, each preceded by a newline and
// indent. The indent must consist of whitespace so that Decode skips it.
func (e *Encoding) EncodeIndented(data []byte, indent string) (string, error) {
	if strings.IndexFunc(indent, func(r rune) bool { return !unicode.IsSpace(r) }) >= 0 {
		return "", fmt.Errorf("%w: indent %q contains non-whitespace", errs.ErrInvalidParameter, indent)
	}

	bb := pool.GetTextBuffer()
	defer pool.PutTextBuffer(bb)

	e.encodeTo(bb, data)
	if bb.Len() <= e.lineWidth {
		return bb.String(), nil
	}

	encoded := bb.Bytes()
	lines := (len(encoded) + e.lineWidth - 1) / e.lineWidth

	var sb strings.Builder
	sb.Grow(len(encoded) + lines*(1+len(indent)))
	for start := 0; start < len(encoded); start += e.lineWidth {
		end := min(start+e.lineWidth, len(encoded))
		sb.WriteByte('\n')
		sb.WriteString(indent)
		sb.Write(encoded[start:end])
	}

	return sb.String(), nil
}

func (e *Encoding) encodeTo(bb *pool.ByteBuffer, data []byte) {
	bb.Grow(e.EncodedLen(len(data)))
	start := bb.Len()
	mask := uint(1)<<e.bits - 1

	var acc uint
	var nbits int
	for _, b := range data {
		acc = acc<<8 | uint(b)
		nbits += 8
		for nbits >= e.bits {
			nbits -= e.bits
			_ = bb.WriteByte(e.alphabet[(acc>>nbits)&mask])
		}
		acc &= uint(1)<<nbits - 1
	}
	if nbits > 0 {
		_ = bb.WriteByte(e.alphabet[(acc<<(e.bits-nbits))&mask])
	}

	if e.pad != NoPadding {
		for (bb.Len()-start)%e.blockChars != 0 {
			_ = bb.WriteByte(byte(e.pad))
		}
	}
}

// Decode returns the bytes represented by text.
//
// Whitespace anywhere in text is ignored. Decode fails with an error wrapping
// errs.ErrInvalidCharacter for a character outside the alphabet, and
// errs.ErrInvalidPadding for a pad character followed by data, a wrong number
// of pad characters, a final block that cannot come from whole bytes, or
// non-zero filler bits in the last character.
func (e *Encoding) Decode(text string) ([]byte, error) {
	out := make([]byte, 0, len(text)*e.bits/8)

	var acc uint
	var nbits, chars, pads int
	for i, r := range text {
		switch {
		case unicode.IsSpace(r):
			continue
		case e.pad != NoPadding && r == e.pad:
			pads++
			continue
		case pads > 0:
			return nil, fmt.Errorf("%w: data character %q at %d follows padding", errs.ErrInvalidPadding, r, i)
		}

		if r >= utf8.RuneSelf || e.decodeMap[byte(r)] == invalidIndex {
			return nil, fmt.Errorf("%w: %q at %d", errs.ErrInvalidCharacter, r, i)
		}

		acc = acc<<e.bits | uint(e.decodeMap[byte(r)])
		nbits += e.bits
		chars++
		if nbits >= 8 {
			nbits -= 8
			out = append(out, byte(acc>>nbits))
			acc &= uint(1)<<nbits - 1
		}
	}

	if nbits >= e.bits {
		return nil, fmt.Errorf("%w: %d characters do not form whole bytes", errs.ErrInvalidPadding, chars)
	}
	if acc != 0 {
		return nil, fmt.Errorf("%w: non-zero trailing bits in final character", errs.ErrInvalidPadding)
	}

	if e.pad == NoPadding {
		return out, nil
	}

	want := 0
	if rem := chars % e.blockChars; rem != 0 {
		want = e.blockChars - rem
	}
	if pads != want {
		return nil, fmt.Errorf("%w: expected %d pad characters, got %d", errs.ErrInvalidPadding, want, pads)
	}

	return out, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
