// Package uhash implements a universal hash family over canonical byte
// encodings.
//
// A Function maps a value to a bucket in [0, m):
//
//	d      = xxHash64(canonical bytes) mod p
//	bucket = ((a·d + b) mod p) mod m
//
// where p = 2^61 - 1 and the coefficients a ∈ [1, p), b ∈ [0, p) are drawn
// once, at construction, from a random.Source. Over that random choice, two
// inputs with distinct digests land in the same bucket with probability at
// most about 1/m. A single Function is deterministic and may be shared by
// goroutines without locking.
package uhash

import (
	"fmt"
	"math/bits"
	"unicode/utf8"

	"github.com/arloliu/canon/codec"
	"github.com/arloliu/canon/errs"
	"github.com/arloliu/canon/internal/collision"
	"github.com/arloliu/canon/internal/hash"
	"github.com/arloliu/canon/internal/options"
	"github.com/arloliu/canon/random"
)

const (
	// Prime is the Mersenne prime 2^61 - 1 defining the coefficient field.
	Prime uint64 = 1<<61 - 1
	// DefaultModulus is the bucket count used when no modulus is given.
	DefaultModulus uint64 = 1 << 32
)

// CanonicalMarshaler is implemented by types that define their own canonical
// byte encoding. HashValue prefers it over the built-in scalar mapping.
type CanonicalMarshaler interface {
	CanonicalBytes() ([]byte, error)
}

// Function is one member of the universal hash family.
type Function struct {
	modulus    uint64
	multiplier uint64
	increment  uint64
}

// New creates a hash function with coefficients drawn from src.
//
// Parameters:
//   - src: randomness for the coefficients; may be nil only with WithCoefficients
//   - opts: WithModulus, WithHashWidth, WithCoefficients
//
// Returns:
//   - *Function: the hash function, DefaultModulus buckets unless configured
//   - error: wraps errs.ErrInvalidParameter for invalid options or a missing source
func New(src random.Source, opts ...Option) (*Function, error) {
	cfg := &config{modulus: DefaultModulus}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if !cfg.explicit {
		if src == nil {
			return nil, fmt.Errorf("%w: random source required without explicit coefficients", errs.ErrInvalidParameter)
		}
		cfg.multiplier, cfg.increment = drawCoefficients(src)
	}

	return &Function{
		modulus:    cfg.modulus,
		multiplier: cfg.multiplier,
		increment:  cfg.increment,
	}, nil
}

// NewDefault creates a hash function with DefaultModulus buckets and
// coefficients from random.Default().
func NewDefault() *Function {
	f, _ := New(random.Default())
	return f
}

// drawCoefficients samples a uniformly from [1, Prime) and b from [0, Prime)
// by rejection: masking to 61 bits leaves only the value Prime (and 0 for a)
// to reject.
func drawCoefficients(src random.Source) (uint64, uint64) {
	a := src.Uint64() & Prime
	for a == 0 || a == Prime {
		a = src.Uint64() & Prime
	}
	b := src.Uint64() & Prime
	for b == Prime {
		b = src.Uint64() & Prime
	}

	return a, b
}

// Modulus returns the number of buckets.
func (f *Function) Modulus() uint64 { return f.modulus }

// Multiplier returns the coefficient a.
func (f *Function) Multiplier() uint64 { return f.multiplier }

// Increment returns the coefficient b.
func (f *Function) Increment() uint64 { return f.increment }

// HashBytes returns the bucket of a canonical byte encoding.
func (f *Function) HashBytes(data []byte) uint64 {
	return f.bucket(hash.Digest(data))
}

// HashString returns the bucket of the canonical Text encoding of s, which is
// s itself. Invalid UTF-8 wraps errs.ErrMalformedText.
func (f *Function) HashString(s string) (uint64, error) {
	if !utf8.ValidString(s) {
		return 0, fmt.Errorf("%w: string is not valid UTF-8", errs.ErrMalformedText)
	}

	return f.bucket(hash.DigestString(s)), nil
}

func (f *Function) bucket(digest uint64) uint64 {
	return mulAddMod(f.multiplier, reduce(digest), f.increment) % f.modulus
}

// HashScalar returns the bucket of the canonical encoding of s.
func (f *Function) HashScalar(s codec.Scalar) (uint64, error) {
	data, err := codec.Marshal(s)
	if err != nil {
		return 0, err
	}

	return f.HashBytes(data), nil
}

// HashValue returns the bucket of v.
//
// A []byte is hashed as-is, a CanonicalMarshaler through its own encoding,
// and anything else through codec.FromAny. Unsupported types wrap
// errs.ErrInvalidParameter.
func (f *Function) HashValue(v any) (uint64, error) {
	switch x := v.(type) {
	case []byte:
		return f.HashBytes(x), nil
	case string:
		return f.HashString(x)
	case CanonicalMarshaler:
		data, err := x.CanonicalBytes()
		if err != nil {
			return 0, err
		}

		return f.HashBytes(data), nil
	}

	s, err := codec.FromAny(v)
	if err != nil {
		return 0, err
	}

	return f.HashScalar(s)
}

// Load summarizes how a set of keys spreads over the buckets of a Function.
type Load struct {
	Keys       int // distinct keys
	Buckets    int // occupied buckets
	Collisions int // keys placed in an already occupied bucket
	MaxLoad    int // most keys sharing one bucket
}

// Load hashes every key and reports bucket occupancy. Duplicate keys are
// counted once.
func (f *Function) Load(keys ...[]byte) Load {
	tracker := collision.NewTracker()
	for _, k := range keys {
		tracker.Track(k, f.HashBytes(k))
	}

	return Load{
		Keys:       tracker.Count(),
		Buckets:    tracker.Occupied(),
		Collisions: tracker.Collisions(),
		MaxLoad:    tracker.MaxLoad(),
	}
}

// HashWith hashes an opaque value through a caller-supplied canonical encoding.
func HashWith[T any](f *Function, v T, toBytes func(T) ([]byte, error)) (uint64, error) {
	data, err := toBytes(v)
	if err != nil {
		return 0, err
	}

	return f.HashBytes(data), nil
}

// mulAddMod returns (a·d + b) mod Prime for a, d, b < Prime.
func mulAddMod(a, d, b uint64) uint64 {
	hi, lo := bits.Mul64(a, d)

	// the product is below 2^122; since 2^61 ≡ 1 (mod p) it folds to
	// (product >> 61) + (product & p).
	r := reduce((hi<<3 | lo>>61) + lo&Prime)

	return reduce(r + b)
}

// reduce returns x mod Prime.
func reduce(x uint64) uint64 {
	x = x&Prime + x>>61
	if x >= Prime {
		x -= Prime
	}

	return x
}
