package basen

import (
	"fmt"
	"unicode"

	"github.com/arloliu/canon/errs"
	"github.com/arloliu/canon/internal/options"
)

const (
	// NoPadding disables padding of the final block.
	NoPadding rune = -1
	// StdPadding is the conventional pad character.
	StdPadding rune = '='
	// DefaultLineWidth is the number of characters per line of EncodeIndented output.
	DefaultLineWidth = 80
)

// Option configures an Encoding created by NewEncoding.
type Option = options.Option[*Encoding]

// WithPadding sets the character appended to fill the final block.
// NoPadding disables padding. The pad must be printable ASCII outside the alphabet.
func WithPadding(pad rune) Option {
	return options.New(func(e *Encoding) error {
		if pad != NoPadding && (pad <= ' ' || pad > '~' || unicode.IsSpace(pad)) {
			return fmt.Errorf("%w: pad character %q is not printable ASCII", errs.ErrInvalidParameter, pad)
		}
		e.pad = pad

		return nil
	})
}

// WithLineWidth sets the line width used by EncodeIndented.
func WithLineWidth(width int) Option {
	return options.New(func(e *Encoding) error {
		if width <= 0 {
			return fmt.Errorf("%w: line width must be positive, got %d", errs.ErrInvalidParameter, width)
		}
		e.lineWidth = width

		return nil
	})
}

// WithCaseInsensitive makes Decode accept letters in either case.
// Encode always emits the alphabet as given.
func WithCaseInsensitive() Option {
	return options.NoError(func(e *Encoding) {
		e.caseInsensitive = true
	})
}
