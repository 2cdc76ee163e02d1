package codec

import (
	"fmt"
	"math/big"

	"github.com/arloliu/canon/buffer"
	"github.com/arloliu/canon/errs"
)

var bigOne = big.NewInt(1)

// SizeBigInt returns the number of bytes in the minimal two's-complement
// encoding of v, sign bit included. A nil v is treated as zero.
func SizeBigInt(v *big.Int) int {
	return bitLength(v)/8 + 1
}

// bitLength returns the number of bits needed to represent v in two's
// complement, excluding the sign bit: v.BitLen() for v >= 0 and
// (|v|-1).BitLen() for v < 0.
func bitLength(v *big.Int) int {
	if v == nil {
		return 0
	}
	if v.Sign() >= 0 {
		return v.BitLen()
	}
	m := new(big.Int).Neg(v)
	m.Sub(m, bigOne)

	return m.BitLen()
}

// PutBigInt writes the minimal two's-complement big-endian encoding of v at
// dst[offset:] and returns the number of bytes written.
//
// Returns an error wrapping errs.ErrOutOfBounds when dst cannot hold
// SizeBigInt(v) bytes at offset; dst is left untouched in that case.
func PutBigInt(dst []byte, offset int, v *big.Int) (int, error) {
	size := SizeBigInt(v)
	if err := buffer.CheckRange(len(dst), offset, size); err != nil {
		return 0, err
	}

	region := dst[offset : offset+size]
	switch {
	case v == nil || v.Sign() == 0:
		clear(region)
	case v.Sign() > 0:
		v.FillBytes(region)
	default:
		// 2^(8*size) + v is the unsigned image of v in size bytes.
		u := new(big.Int).Lsh(bigOne, uint(8*size))
		u.Add(u, v)
		u.FillBytes(region)
	}

	return size, nil
}

// BigIntToBytes returns the minimal two's-complement encoding of v.
func BigIntToBytes(v *big.Int) []byte {
	buf := make([]byte, SizeBigInt(v))
	_, _ = PutBigInt(buf, 0, v)

	return buf
}

// BigIntFromBytes interprets all of data as a two's-complement big-endian integer.
//
// Non-minimal input (extra leading 0x00 or 0xFF bytes) is accepted.
// Returns an error wrapping errs.ErrInsufficientData for empty input.
func BigIntFromBytes(data []byte) (*big.Int, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: big integer needs at least 1 byte", errs.ErrInsufficientData)
	}

	v := new(big.Int).SetBytes(data)
	if data[0]&0x80 != 0 {
		v.Sub(v, new(big.Int).Lsh(bigOne, uint(8*len(data))))
	}

	return v, nil
}

// BigIntAt decodes the two's-complement integer stored in data[offset:offset+length].
func BigIntAt(data []byte, offset, length int) (*big.Int, error) {
	b, err := buffer.Read(data, offset, length)
	if err != nil {
		return nil, err
	}

	return BigIntFromBytes(b)
}
