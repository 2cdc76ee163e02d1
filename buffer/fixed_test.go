package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/canon/errs"
)

func TestFixedRoundTrip(t *testing.T) {
	buf := make([]byte, 15)

	require.NoError(t, PutUint8(buf, 0, 0xAB))
	require.NoError(t, PutUint16(buf, 1, 0xFACE))
	require.NoError(t, PutUint32(buf, 3, 0x1234FACE))
	require.NoError(t, PutUint64(buf, 7, 0x0123_45FA_CE67_89AB))

	require.Equal(t, []byte{
		0xAB,
		0xFA, 0xCE,
		0x12, 0x34, 0xFA, 0xCE,
		0x01, 0x23, 0x45, 0xFA, 0xCE, 0x67, 0x89, 0xAB,
	}, buf)

	v8, err := Uint8(buf, 0)
	require.NoError(t, err)
	require.Equal(t, uint8(0xAB), v8)

	v16, err := Uint16(buf, 1)
	require.NoError(t, err)
	require.Equal(t, uint16(0xFACE), v16)

	v32, err := Uint32(buf, 3)
	require.NoError(t, err)
	require.Equal(t, uint32(0x1234FACE), v32)

	v64, err := Uint64(buf, 7)
	require.NoError(t, err)
	require.Equal(t, uint64(0x0123_45FA_CE67_89AB), v64)
}

func TestFixedWriteOutOfBounds(t *testing.T) {
	buf := make([]byte, 4)

	err := PutUint32(buf, 3, 0xDEADBEEF)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
	require.Equal(t, []byte{0, 0, 0, 0}, buf)

	require.ErrorIs(t, PutUint16(buf, 3, 1), errs.ErrOutOfBounds)
	require.ErrorIs(t, PutUint64(buf, 0, 1), errs.ErrOutOfBounds)
	require.ErrorIs(t, PutUint8(buf, 4, 1), errs.ErrOutOfBounds)
	require.ErrorIs(t, PutUint8(buf, -1, 1), errs.ErrOutOfBounds)
}

func TestFixedReadInsufficientData(t *testing.T) {
	buf := []byte{1, 2, 3}

	_, err := Uint32(buf, 0)
	require.ErrorIs(t, err, errs.ErrInsufficientData)

	_, err = Uint16(buf, 2)
	require.ErrorIs(t, err, errs.ErrInsufficientData)

	_, err = Uint64(buf, 0)
	require.ErrorIs(t, err, errs.ErrInsufficientData)

	_, err = Uint8(buf, 3)
	require.ErrorIs(t, err, errs.ErrInsufficientData)

	_, err = Uint8(buf, -1)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)

	_, err = Uint16(buf, 7)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
}

func TestAvailable(t *testing.T) {
	n, err := Available([]byte{1, 2, 3}, 1, 2)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, err = Available([]byte{1, 2, 3}, 1, 3)
	require.ErrorIs(t, err, errs.ErrInsufficientData)
}
