package codec

import (
	"math"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/canon/errs"
)

func TestDecimalLayout(t *testing.T) {
	tests := []struct {
		name     string
		value    decimal.Decimal
		expected []byte
	}{
		{"123.45", decimal.New(12345, -2), []byte{0x00, 0x00, 0x00, 0x02, 0x30, 0x39}},
		{"-1.5", decimal.New(-15, -1), []byte{0x00, 0x00, 0x00, 0x01, 0xF1}},
		{"zero", decimal.New(0, 0), []byte{0x00, 0x00, 0x00, 0x00, 0x00}},
		{"1200 as 12e2", decimal.New(12, 2), []byte{0xFF, 0xFF, 0xFF, 0xFE, 0x0C}},
		{"0.128", decimal.New(128, -3), []byte{0x00, 0x00, 0x00, 0x03, 0x00, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, len(tt.expected), SizeDecimal(tt.value))

			data, err := DecimalToBytes(tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.expected, data)

			got, err := DecimalFromBytes(data)
			require.NoError(t, err)
			require.True(t, tt.value.Equal(got), "got %s", got)
			require.Equal(t, tt.value.Exponent(), got.Exponent())
		})
	}
}

func TestDecimalFromUnscaledAndScale(t *testing.T) {
	got, err := DecimalFromBytes([]byte{0x00, 0x00, 0x00, 0x02, 0x30, 0x39})
	require.NoError(t, err)
	require.Equal(t, "123.45", got.String())
}

func TestDecimalPreservesScale(t *testing.T) {
	a := decimal.RequireFromString("123.45")
	b := decimal.RequireFromString("123.450")

	ab, err := DecimalToBytes(a)
	require.NoError(t, err)
	bb, err := DecimalToBytes(b)
	require.NoError(t, err)
	require.NotEqual(t, ab, bb)

	got, err := DecimalFromBytes(bb)
	require.NoError(t, err)
	require.Equal(t, int32(-3), got.Exponent())
	require.True(t, a.Equal(got))
}

func TestDecimalLargeUnscaled(t *testing.T) {
	unscaled, ok := new(big.Int).SetString("-9876543210987654321098765432109876543210", 10)
	require.True(t, ok)
	d := decimal.NewFromBigInt(unscaled, -20)

	data, err := DecimalToBytes(d)
	require.NoError(t, err)

	got, err := DecimalFromBytes(data)
	require.NoError(t, err)
	require.True(t, d.Equal(got))
	require.Equal(t, d.String(), got.String())
}

func TestDecimalErrors(t *testing.T) {
	_, err := DecimalFromBytes([]byte{0, 0, 0, 1})
	require.ErrorIs(t, err, errs.ErrInsufficientData)

	_, err = DecimalFromBytes([]byte{0x80, 0x00, 0x00, 0x00, 0x01})
	require.ErrorIs(t, err, errs.ErrInvalidParameter)

	_, err = DecimalToBytes(decimal.New(1, math.MinInt32))
	require.ErrorIs(t, err, errs.ErrInvalidParameter)

	buf := []byte{0xAA, 0xAA, 0xAA, 0xAA, 0xAA}
	_, err = PutDecimal(buf, 0, decimal.New(12345, -2))
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
	require.Equal(t, []byte{0xAA, 0xAA, 0xAA, 0xAA, 0xAA}, buf)
}

func TestDecimalAt(t *testing.T) {
	d := decimal.RequireFromString("-0.001")
	buf := make([]byte, 3+SizeDecimal(d))

	n, err := PutDecimal(buf, 3, d)
	require.NoError(t, err)

	got, err := DecimalAt(buf, 3, n)
	require.NoError(t, err)
	require.Equal(t, "-0.001", got.String())
}
