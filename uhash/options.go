package uhash

import (
	"fmt"

	"github.com/arloliu/canon/errs"
	"github.com/arloliu/canon/internal/options"
)

// MaxHashWidth is the widest bucket range selectable with WithHashWidth.
const MaxHashWidth = 61

type config struct {
	modulus    uint64
	multiplier uint64
	increment  uint64
	explicit   bool
}

// Option configures a Function created by New.
type Option = options.Option[*config]

// WithModulus sets the number of buckets. Hash values fall in [0, m).
func WithModulus(m uint64) Option {
	return options.New(func(c *config) error {
		if m == 0 {
			return fmt.Errorf("%w: modulus must be positive", errs.ErrInvalidParameter)
		}
		c.modulus = m

		return nil
	})
}

// WithHashWidth sets the number of buckets to 2^bits, so every hash value
// fits in bits bits. Valid widths are 0 through MaxHashWidth.
func WithHashWidth(bits int) Option {
	return options.New(func(c *config) error {
		if bits < 0 || bits > MaxHashWidth {
			return fmt.Errorf("%w: hash width %d outside 0..%d", errs.ErrInvalidParameter, bits, MaxHashWidth)
		}
		c.modulus = uint64(1) << bits

		return nil
	})
}

// WithCoefficients fixes the multiplier a and increment b instead of drawing
// them at random. Functions built with the same coefficients and modulus
// produce the same hash for the same input in every process.
//
// a must lie in [1, Prime) and b in [0, Prime).
func WithCoefficients(a, b uint64) Option {
	return options.New(func(c *config) error {
		if a == 0 || a >= Prime {
			return fmt.Errorf("%w: multiplier %d outside [1, %d)", errs.ErrInvalidParameter, a, Prime)
		}
		if b >= Prime {
			return fmt.Errorf("%w: increment %d outside [0, %d)", errs.ErrInvalidParameter, b, Prime)
		}
		c.multiplier = a
		c.increment = b
		c.explicit = true

		return nil
	})
}
