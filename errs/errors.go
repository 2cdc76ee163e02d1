// Package errs defines the sentinel errors returned by canon packages.
//
// Call sites wrap these values with additional context using fmt.Errorf and
// the %w verb, so callers should test for them with errors.Is:
//
//	if _, err := codec.Int32At(data, 12); errors.Is(err, errs.ErrInsufficientData) {
//	    // handle truncated input
//	}
package errs

import "errors"

var (
	// ErrOutOfBounds indicates that an offset or length exceeds the buffer capacity.
	ErrOutOfBounds = errors.New("offset out of bounds")

	// ErrInsufficientData indicates that fewer bytes are available than a value requires.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrMalformedText indicates a byte range that is not valid UTF-8.
	ErrMalformedText = errors.New("malformed UTF-8 text")

	// ErrInvalidCharacter indicates a character outside the alphabet of a base-N encoding.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidPadding indicates a misplaced or miscounted pad character.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrInvalidParameter indicates an argument outside its permitted domain.
	ErrInvalidParameter = errors.New("invalid parameter")
)
