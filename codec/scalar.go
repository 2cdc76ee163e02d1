package codec

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/arloliu/canon/errs"
)

// Kind identifies a Scalar variant.
type Kind uint8

const (
	KindBool    Kind = 0x1 // KindBool is a 1-byte boolean.
	KindInt16   Kind = 0x2 // KindInt16 is a 2-byte signed integer.
	KindInt32   Kind = 0x3 // KindInt32 is a 4-byte signed integer.
	KindInt64   Kind = 0x4 // KindInt64 is an 8-byte signed integer.
	KindFloat64 Kind = 0x5 // KindFloat64 is an 8-byte IEEE-754 float.
	KindBigInt  Kind = 0x6 // KindBigInt is an arbitrary-precision integer.
	KindDecimal Kind = 0x7 // KindDecimal is an arbitrary-precision decimal.
	KindText    Kind = 0x8 // KindText is UTF-8 text.
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindInt16:
		return "Int16"
	case KindInt32:
		return "Int32"
	case KindInt64:
		return "Int64"
	case KindFloat64:
		return "Float64"
	case KindBigInt:
		return "BigInt"
	case KindDecimal:
		return "Decimal"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Valid reports whether k names a known variant.
func (k Kind) Valid() bool {
	return k >= KindBool && k <= KindText
}

// FixedSize returns the canonical width of fixed-size kinds and false for
// variable-width kinds.
func (k Kind) FixedSize() (int, bool) {
	switch k { //nolint:exhaustive
	case KindBool:
		return BoolSize, true
	case KindInt16:
		return Int16Size, true
	case KindInt32:
		return Int32Size, true
	case KindInt64, KindFloat64:
		return Int64Size, true
	default:
		return 0, false
	}
}

// Scalar is a value with a canonical byte representation.
//
// The interface is sealed: its only implementations are Bool, Int16, Int32,
// Int64, Float64, BigInt, Decimal and Text.
type Scalar interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Size returns the width of the canonical encoding in bytes.
	Size() int

	put(dst []byte, offset int) (int, error)
}

type (
	Bool    bool
	Int16   int16
	Int32   int32
	Int64   int64
	Float64 float64
	Text    string
)

// BigInt wraps an arbitrary-precision integer. A nil Value encodes as zero.
type BigInt struct {
	Value *big.Int
}

// Decimal wraps an arbitrary-precision decimal.
type Decimal struct {
	Value decimal.Decimal
}

// NewBigInt returns v as a Scalar.
func NewBigInt(v *big.Int) BigInt { return BigInt{Value: v} }

// NewDecimal returns d as a Scalar.
func NewDecimal(d decimal.Decimal) Decimal { return Decimal{Value: d} }

func (Bool) Kind() Kind    { return KindBool }
func (Int16) Kind() Kind   { return KindInt16 }
func (Int32) Kind() Kind   { return KindInt32 }
func (Int64) Kind() Kind   { return KindInt64 }
func (Float64) Kind() Kind { return KindFloat64 }
func (BigInt) Kind() Kind  { return KindBigInt }
func (Decimal) Kind() Kind { return KindDecimal }
func (Text) Kind() Kind    { return KindText }

func (Bool) Size() int      { return BoolSize }
func (Int16) Size() int     { return Int16Size }
func (Int32) Size() int     { return Int32Size }
func (Int64) Size() int     { return Int64Size }
func (Float64) Size() int   { return Float64Size }
func (v BigInt) Size() int  { return SizeBigInt(v.Value) }
func (v Decimal) Size() int { return SizeDecimal(v.Value) }
func (v Text) Size() int    { return len(v) }

func (v Bool) put(dst []byte, offset int) (int, error)    { return PutBool(dst, offset, bool(v)) }
func (v Int16) put(dst []byte, offset int) (int, error)   { return PutInt16(dst, offset, int16(v)) }
func (v Int32) put(dst []byte, offset int) (int, error)   { return PutInt32(dst, offset, int32(v)) }
func (v Int64) put(dst []byte, offset int) (int, error)   { return PutInt64(dst, offset, int64(v)) }
func (v Float64) put(dst []byte, offset int) (int, error) { return PutFloat64(dst, offset, float64(v)) }
func (v BigInt) put(dst []byte, offset int) (int, error)  { return PutBigInt(dst, offset, v.Value) }
func (v Decimal) put(dst []byte, offset int) (int, error) { return PutDecimal(dst, offset, v.Value) }
func (v Text) put(dst []byte, offset int) (int, error)    { return PutText(dst, offset, string(v)) }

// Size returns the canonical width of s in bytes.
func Size(s Scalar) int {
	return s.Size()
}

// Put writes the canonical encoding of s at dst[offset:] and returns the
// number of bytes written. Nothing is written on error.
func Put(dst []byte, offset int, s Scalar) (int, error) {
	if s == nil {
		return 0, fmt.Errorf("%w: nil scalar", errs.ErrInvalidParameter)
	}

	return s.put(dst, offset)
}

// Marshal returns the canonical encoding of s in a buffer of exactly s.Size() bytes.
func Marshal(s Scalar) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil scalar", errs.ErrInvalidParameter)
	}

	buf := make([]byte, s.Size())
	if _, err := s.put(buf, 0); err != nil {
		return nil, err
	}

	return buf, nil
}

// Unmarshal decodes data as a scalar of the given kind.
//
// Fixed-width kinds require exactly their canonical width; variable-width
// kinds consume all of data.
func Unmarshal(kind Kind, data []byte) (Scalar, error) {
	if size, ok := kind.FixedSize(); ok && len(data) != size {
		if len(data) < size {
			return nil, fmt.Errorf("%w: %s needs %d bytes, have %d", errs.ErrInsufficientData, kind, size, len(data))
		}

		return nil, fmt.Errorf("%w: %s takes %d bytes, have %d", errs.ErrInvalidParameter, kind, size, len(data))
	}

	switch kind {
	case KindBool:
		v, err := BoolFromBytes(data)
		return Bool(v), err
	case KindInt16:
		v, err := Int16FromBytes(data)
		return Int16(v), err
	case KindInt32:
		v, err := Int32FromBytes(data)
		return Int32(v), err
	case KindInt64:
		v, err := Int64FromBytes(data)
		return Int64(v), err
	case KindFloat64:
		v, err := Float64FromBytes(data)
		return Float64(v), err
	case KindBigInt:
		v, err := BigIntFromBytes(data)
		if err != nil {
			return nil, err
		}

		return BigInt{Value: v}, nil
	case KindDecimal:
		v, err := DecimalFromBytes(data)
		if err != nil {
			return nil, err
		}

		return Decimal{Value: v}, nil
	case KindText:
		v, err := TextFromBytes(data)
		if err != nil {
			return nil, err
		}

		return Text(v), nil
	default:
		return nil, fmt.Errorf("%w: unknown scalar kind %d", errs.ErrInvalidParameter, kind)
	}
}

// FromAny maps a plain Go value onto the Scalar sum type.
//
// Supported inputs: Scalar, bool, int8, int16, int32, int64, int, uint8,
// uint16, uint32, float32, float64, *big.Int, decimal.Decimal and
// string. Signed and small unsigned integers widen to the narrowest kind that
// holds every value of their Go type; int maps to Int64 on every platform, and
// float32 widens to Float64. Unsupported types return errs.ErrInvalidParameter.
func FromAny(v any) (Scalar, error) {
	switch x := v.(type) {
	case Scalar:
		return x, nil
	case bool:
		return Bool(x), nil
	case int8:
		return Int16(x), nil
	case int16:
		return Int16(x), nil
	case int32:
		return Int32(x), nil
	case int64:
		return Int64(x), nil
	case int:
		return Int64(x), nil
	case uint8:
		return Int16(x), nil
	case uint16:
		return Int32(x), nil
	case uint32:
		return Int64(x), nil
	case float32:
		return Float64(x), nil
	case float64:
		return Float64(x), nil
	case *big.Int:
		return BigInt{Value: x}, nil
	case decimal.Decimal:
		return Decimal{Value: x}, nil
	case string:
		return Text(x), nil
	case nil:
		return nil, fmt.Errorf("%w: nil value", errs.ErrInvalidParameter)
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", errs.ErrInvalidParameter, v)
	}
}
