package codec

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/canon/buffer"
	"github.com/arloliu/canon/errs"
)

// PutText writes the UTF-8 bytes of s at dst[offset:] without prefix or terminator.
//
// Returns an error wrapping errs.ErrMalformedText when s is not valid UTF-8,
// since such a string could not be decoded back.
func PutText(dst []byte, offset int, s string) (int, error) {
	if !utf8.ValidString(s) {
		return 0, fmt.Errorf("%w: string is not valid UTF-8", errs.ErrMalformedText)
	}
	if err := buffer.CheckRange(len(dst), offset, len(s)); err != nil {
		return 0, err
	}
	copy(dst[offset:], s)

	return len(s), nil
}

// TextToBytes returns the UTF-8 bytes of s.
func TextToBytes(s string) ([]byte, error) {
	buf := make([]byte, len(s))
	if _, err := PutText(buf, 0, s); err != nil {
		return nil, err
	}

	return buf, nil
}

// TextFromBytes decodes all of data as UTF-8 text.
func TextFromBytes(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %d bytes are not valid UTF-8", errs.ErrMalformedText, len(data))
	}

	return string(data), nil
}

// TextAt decodes data[offset:offset+length] as UTF-8 text.
func TextAt(data []byte, offset, length int) (string, error) {
	b, err := buffer.Read(data, offset, length)
	if err != nil {
		return "", err
	}

	return TextFromBytes(b)
}
