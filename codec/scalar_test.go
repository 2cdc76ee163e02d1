package codec

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/canon/errs"
)

func TestKind(t *testing.T) {
	require.Equal(t, "BigInt", KindBigInt.String())
	require.Equal(t, "Unknown", Kind(0).String())
	require.False(t, Kind(0).Valid())
	require.False(t, Kind(9).Valid())
	require.True(t, KindText.Valid())

	size, ok := KindFloat64.FixedSize()
	require.True(t, ok)
	require.Equal(t, 8, size)

	_, ok = KindDecimal.FixedSize()
	require.False(t, ok)
}

func TestScalarMarshalRoundTrip(t *testing.T) {
	scalars := []Scalar{
		Bool(true),
		Bool(false),
		Int16(-300),
		Int32(1 << 20),
		Int64(-1),
		Float64(2.5),
		NewBigInt(big.NewInt(-129)),
		NewDecimal(decimal.New(12345, -2)),
		Text("héllo"),
		Text(""),
	}

	for _, s := range scalars {
		t.Run(s.Kind().String(), func(t *testing.T) {
			data, err := Marshal(s)
			require.NoError(t, err)
			require.Len(t, data, Size(s))

			got, err := Unmarshal(s.Kind(), data)
			require.NoError(t, err)
			require.Equal(t, s.Kind(), got.Kind())

			switch want := s.(type) {
			case BigInt:
				require.Zero(t, want.Value.Cmp(got.(BigInt).Value))
			case Decimal:
				require.True(t, want.Value.Equal(got.(Decimal).Value))
			default:
				require.Equal(t, s, got)
			}
		})
	}
}

func TestScalarMatchesTypedCodec(t *testing.T) {
	data, err := Marshal(Int32(0x01020304))
	require.NoError(t, err)
	require.Equal(t, Int32ToBytes(0x01020304), data)

	data, err = Marshal(NewBigInt(big.NewInt(128)))
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x80}, data)
}

func TestPut(t *testing.T) {
	buf := make([]byte, 8)
	n, err := Put(buf, 2, Int32(-2))
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []byte{0, 0, 0xFF, 0xFF, 0xFF, 0xFE, 0, 0}, buf)

	_, err = Put(buf, 6, Int32(1))
	require.ErrorIs(t, err, errs.ErrOutOfBounds)

	_, err = Put(buf, 0, nil)
	require.ErrorIs(t, err, errs.ErrInvalidParameter)

	_, err = Marshal(nil)
	require.ErrorIs(t, err, errs.ErrInvalidParameter)
}

func TestUnmarshalErrors(t *testing.T) {
	_, err := Unmarshal(KindInt32, []byte{1, 2})
	require.ErrorIs(t, err, errs.ErrInsufficientData)

	_, err = Unmarshal(KindInt16, []byte{1, 2, 3})
	require.ErrorIs(t, err, errs.ErrInvalidParameter)

	_, err = Unmarshal(Kind(0x42), []byte{1})
	require.ErrorIs(t, err, errs.ErrInvalidParameter)

	_, err = Unmarshal(KindText, []byte{0xFF})
	require.ErrorIs(t, err, errs.ErrMalformedText)

	_, err = Unmarshal(KindBigInt, nil)
	require.ErrorIs(t, err, errs.ErrInsufficientData)
}

func TestFromAny(t *testing.T) {
	bi := big.NewInt(7)
	d := decimal.New(5, -1)

	tests := []struct {
		in   any
		want Scalar
	}{
		{true, Bool(true)},
		{int8(-3), Int16(-3)},
		{int16(-3), Int16(-3)},
		{int32(9), Int32(9)},
		{int64(9), Int64(9)},
		{int(42), Int64(42)},
		{uint8(200), Int16(200)},
		{uint16(60000), Int32(60000)},
		{uint32(4000000000), Int64(4000000000)},
		{float32(0.5), Float64(0.5)},
		{1.25, Float64(1.25)},
		{bi, BigInt{Value: bi}},
		{d, Decimal{Value: d}},
		{"text", Text("text")},
		{Int16(5), Int16(5)},
	}

	for _, tt := range tests {
		got, err := FromAny(tt.in)
		require.NoError(t, err, "%T", tt.in)
		require.Equal(t, tt.want, got, "%T", tt.in)
	}

	_, err := FromAny(nil)
	require.ErrorIs(t, err, errs.ErrInvalidParameter)

	_, err = FromAny(uint64(1))
	require.ErrorIs(t, err, errs.ErrInvalidParameter)

	_, err = FromAny([]byte{1})
	require.ErrorIs(t, err, errs.ErrInvalidParameter)
}
