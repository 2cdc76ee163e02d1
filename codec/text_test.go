package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/canon/errs"
)

func TestText(t *testing.T) {
	tests := []string{"", "hello", "héllo wörld", "日本語", "emoji 🎉"}

	for _, s := range tests {
		data, err := TextToBytes(s)
		require.NoError(t, err)
		require.Equal(t, []byte(s), data)

		got, err := TextFromBytes(data)
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
}

func TestTextMalformed(t *testing.T) {
	_, err := TextFromBytes([]byte{0x61, 0xC3})
	require.ErrorIs(t, err, errs.ErrMalformedText)

	_, err = TextFromBytes([]byte{0xFF, 0xFE})
	require.ErrorIs(t, err, errs.ErrMalformedText)

	buf := make([]byte, 4)
	_, err = PutText(buf, 0, "\xff")
	require.ErrorIs(t, err, errs.ErrMalformedText)

	_, err = TextToBytes("ok\xc0")
	require.ErrorIs(t, err, errs.ErrMalformedText)
}

func TestTextAt(t *testing.T) {
	buf := make([]byte, 10)
	n, err := PutText(buf, 2, "añb")
	require.NoError(t, err)
	require.Equal(t, 4, n)

	got, err := TextAt(buf, 2, n)
	require.NoError(t, err)
	require.Equal(t, "añb", got)

	_, err = TextAt(buf, 8, 4)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)

	_, err = PutText(buf, 8, "abc")
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
}
