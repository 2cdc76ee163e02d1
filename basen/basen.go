package basen

const (
	base2Alphabet  = "01"
	base16Alphabet = "0123456789ABCDEF"
	base32Alphabet = "0123456789ABCDFGHJKLMNPQRSTVWXYZ"
	base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
)

// Predefined encodings.
var (
	Base2  = mustEncoding(1, base2Alphabet)
	Base16 = mustEncoding(4, base16Alphabet, WithCaseInsensitive())
	Base32 = mustEncoding(5, base32Alphabet, WithPadding(StdPadding), WithCaseInsensitive())
	Base64 = mustEncoding(6, base64Alphabet, WithPadding(StdPadding))
)

func mustEncoding(bits int, alphabet string, opts ...Option) *Encoding {
	e, err := NewEncoding(bits, alphabet, opts...)
	if err != nil {
		panic(err)
	}

	return e
}

// EncodeBase2 returns the base-2 encoding of data.
func EncodeBase2(data []byte) string { return Base2.Encode(data) }

// DecodeBase2 decodes base-2 text.
func DecodeBase2(text string) ([]byte, error) { return Base2.Decode(text) }

// EncodeBase16 returns the upper-case base-16 encoding of data.
func EncodeBase16(data []byte) string { return Base16.Encode(data) }

// DecodeBase16 decodes base-16 text in either case.
func DecodeBase16(text string) ([]byte, error) { return Base16.Decode(text) }

// EncodeBase32 returns the base-32 encoding of data.
func EncodeBase32(data []byte) string { return Base32.Encode(data) }

// DecodeBase32 decodes base-32 text in either case.
func DecodeBase32(text string) ([]byte, error) { return Base32.Decode(text) }

// EncodeBase64 returns the base-64 encoding of data.
func EncodeBase64(data []byte) string { return Base64.Encode(data) }

// DecodeBase64 decodes base-64 text.
func DecodeBase64(text string) ([]byte, error) { return Base64.Decode(text) }
