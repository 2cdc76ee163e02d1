package codec

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/arloliu/canon/buffer"
	"github.com/arloliu/canon/errs"
)

// decimalScale returns the power-of-ten scale of d (the negated exponent).
func decimalScale(d decimal.Decimal) (int32, error) {
	exp := d.Exponent()
	if exp == math.MinInt32 {
		return 0, fmt.Errorf("%w: decimal exponent %d has no int32 scale", errs.ErrInvalidParameter, exp)
	}

	return -exp, nil
}

// SizeDecimal returns the encoded width of d: 4 scale bytes plus the minimal
// two's-complement width of the unscaled value.
func SizeDecimal(d decimal.Decimal) int {
	return Int32Size + SizeBigInt(d.Coefficient())
}

// PutDecimal writes d at dst[offset:] as [scale int32][unscaled big integer]
// and returns the number of bytes written.
//
// The value is reconstructed as unscaled × 10^-scale, so the exponent of d is
// preserved exactly: 123.45 and 123.450 encode differently.
func PutDecimal(dst []byte, offset int, d decimal.Decimal) (int, error) {
	scale, err := decimalScale(d)
	if err != nil {
		return 0, err
	}

	unscaled := d.Coefficient()
	size := Int32Size + SizeBigInt(unscaled)
	if err := buffer.CheckRange(len(dst), offset, size); err != nil {
		return 0, err
	}

	// the range check above covers both writes
	_, _ = PutInt32(dst, offset, scale)
	_, _ = PutBigInt(dst, offset+Int32Size, unscaled)

	return size, nil
}

// DecimalToBytes returns the canonical encoding of d.
func DecimalToBytes(d decimal.Decimal) ([]byte, error) {
	buf := make([]byte, SizeDecimal(d))
	if _, err := PutDecimal(buf, 0, d); err != nil {
		return nil, err
	}

	return buf, nil
}

// DecimalFromBytes decodes a decimal from all of data.
//
// Returns an error wrapping errs.ErrInsufficientData when data is shorter than
// the 4-byte scale plus one unscaled byte.
func DecimalFromBytes(data []byte) (decimal.Decimal, error) {
	if len(data) < Int32Size+1 {
		return decimal.Decimal{}, fmt.Errorf("%w: decimal needs at least %d bytes, have %d",
			errs.ErrInsufficientData, Int32Size+1, len(data))
	}

	scale, _ := Int32At(data, 0)
	if scale == math.MinInt32 {
		return decimal.Decimal{}, fmt.Errorf("%w: decimal scale %d out of range", errs.ErrInvalidParameter, scale)
	}

	unscaled, err := BigIntFromBytes(data[Int32Size:])
	if err != nil {
		return decimal.Decimal{}, err
	}

	return decimal.NewFromBigInt(unscaled, -scale), nil
}

// DecimalAt decodes the decimal stored in data[offset:offset+length].
func DecimalAt(data []byte, offset, length int) (decimal.Decimal, error) {
	b, err := buffer.Read(data, offset, length)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return DecimalFromBytes(b)
}
