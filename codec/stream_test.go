package codec

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/canon/errs"
)

func TestStreamRoundTrip(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.WriteBool(true)
	w.WriteInt16(-2)
	w.WriteInt32(70000)
	w.WriteInt64(-1)
	w.WriteFloat64(0.25)
	w.WriteBigInt(big.NewInt(128))
	require.NoError(t, w.WriteDecimal(decimal.New(12345, -2)))
	require.NoError(t, w.WriteText("héllo"))

	require.Equal(t, 8, w.Len())
	require.Equal(t, 1+2+4+8+8+(4+2)+(4+6)+(4+6), w.Size())

	r := NewReader(w.Bytes())

	b, err := r.ReadBool()
	require.NoError(t, err)
	require.True(t, b)

	i16, err := r.ReadInt16()
	require.NoError(t, err)
	require.Equal(t, int16(-2), i16)

	i32, err := r.ReadInt32()
	require.NoError(t, err)
	require.Equal(t, int32(70000), i32)

	i64, err := r.ReadInt64()
	require.NoError(t, err)
	require.Equal(t, int64(-1), i64)

	f, err := r.ReadFloat64()
	require.NoError(t, err)
	require.InDelta(t, 0.25, f, 0)

	bi, err := r.ReadBigInt()
	require.NoError(t, err)
	require.Equal(t, int64(128), bi.Int64())

	d, err := r.ReadDecimal()
	require.NoError(t, err)
	require.Equal(t, "123.45", d.String())

	s, err := r.ReadText()
	require.NoError(t, err)
	require.Equal(t, "héllo", s)

	require.Zero(t, r.Remaining())
	require.Equal(t, w.Size(), r.Offset())
}

func TestStreamLengthPrefix(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.WriteBigInt(big.NewInt(-129))
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x02, 0xFF, 0x7F}, w.Bytes())
}

func TestStreamTagged(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	values := []Scalar{Int16(7), Text("x"), Bool(false), NewBigInt(big.NewInt(-1))}
	for _, v := range values {
		require.NoError(t, w.WriteTagged(v))
	}

	r := NewReader(w.Bytes())
	for _, want := range values {
		got, err := r.ReadTagged()
		require.NoError(t, err)
		require.Equal(t, want.Kind(), got.Kind())
		if bi, ok := want.(BigInt); ok {
			require.Zero(t, bi.Value.Cmp(got.(BigInt).Value))
			continue
		}
		require.Equal(t, want, got)
	}
	require.Zero(t, r.Remaining())
}

func TestStreamWriteFailureLeavesBufferUntouched(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.WriteInt16(1)
	before := append([]byte(nil), w.Bytes()...)

	require.ErrorIs(t, w.WriteText("\xff"), errs.ErrMalformedText)
	require.ErrorIs(t, w.WriteTagged(Text("\xff")), errs.ErrMalformedText)
	require.ErrorIs(t, w.WriteScalar(nil), errs.ErrInvalidParameter)

	require.Equal(t, before, w.Bytes())
	require.Equal(t, 1, w.Len())
}

func TestStreamReadFailureKeepsCursor(t *testing.T) {
	r := NewReader([]byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x09, 0x41})

	v, err := r.ReadInt16()
	require.NoError(t, err)
	require.Equal(t, int16(1), v)

	// declared length 9, only 1 byte follows
	_, err = r.ReadText()
	require.ErrorIs(t, err, errs.ErrInsufficientData)
	require.Equal(t, 2, r.Offset())

	_, err = r.ReadInt64()
	require.ErrorIs(t, err, errs.ErrInsufficientData)
	require.Equal(t, 2, r.Offset())

	i32, err := r.ReadInt32()
	require.NoError(t, err)
	require.Equal(t, int32(9), i32)
	require.Equal(t, 1, r.Remaining())
}

func TestStreamReadTaggedUnknownKind(t *testing.T) {
	r := NewReader([]byte{0x42, 0x00})
	_, err := r.ReadTagged()
	require.ErrorIs(t, err, errs.ErrInvalidParameter)
	require.Zero(t, r.Offset())

	_, err = NewReader(nil).ReadTagged()
	require.ErrorIs(t, err, errs.ErrInsufficientData)
}

func TestWriterRelease(t *testing.T) {
	w := NewWriter()
	w.WriteInt32(1)
	w.Release()
	w.Release()

	require.Zero(t, w.Len())
	require.Panics(t, func() { w.WriteInt32(2) })
}

func BenchmarkStreamWriter(b *testing.B) {
	bi := big.NewInt(-123456789)
	for b.Loop() {
		w := NewWriter()
		w.WriteInt64(42)
		w.WriteBigInt(bi)
		_ = w.WriteText("benchmark")
		w.Release()
	}
}
