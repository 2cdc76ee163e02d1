// Package random supplies the randomness consumed by uhash when it draws
// hash coefficients.
//
// Source is the contract; Generator is the default implementation, a PCG
// generator guarded by a mutex so that one instance can be shared between
// goroutines. Seeded generators are reproducible, which tests rely on.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/arloliu/canon/errs"
)

// Source is a supply of uniformly distributed random values.
type Source interface {
	// Bytes returns n random bytes.
	Bytes(n int) ([]byte, error)
	// Int returns a random 32-bit integer over its whole range.
	Int() int32
	// Uint64 returns a random 64-bit value.
	Uint64() uint64
	// Index returns a random integer in [0, bound).
	Index(bound int) (int, error)
	// Probability returns a random float64 in [0, 1).
	Probability() float64
	// Gaussian returns a standard normal variate (mean 0, deviation 1).
	Gaussian() float64
}

// NewSeed generates a PCG seed pair using crypto/rand.
func NewSeed() (uint64, uint64, error) {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]), nil
}

// Generator is a Source backed by math/rand/v2's PCG.
//
// All methods are safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ Source = (*Generator)(nil)

// NewGenerator creates a Generator seeded from crypto/rand.
func NewGenerator() (*Generator, error) {
	s1, s2, err := NewSeed()
	if err != nil {
		return nil, err
	}

	return NewSeededGenerator(s1, s2), nil
}

// NewSeededGenerator creates a Generator whose output is fully determined by
// the seed pair.
func NewSeededGenerator(seed1, seed2 uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

var defaultGenerator = sync.OnceValue(func() *Generator {
	g, err := NewGenerator()
	if err != nil {
		panic(err)
	}

	return g
})

// Default returns the process-wide Generator, seeded on first use.
func Default() *Generator {
	return defaultGenerator()
}

// Bytes returns n random bytes. A negative n wraps errs.ErrInvalidParameter.
func (g *Generator) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative byte count %d", errs.ErrInvalidParameter, n)
	}

	b := make([]byte, n)

	g.mu.Lock()
	defer g.mu.Unlock()

	for i := 0; i < n; i += 8 {
		var word [8]byte
		binary.BigEndian.PutUint64(word[:], g.rng.Uint64())
		copy(b[i:], word[:])
	}

	return b, nil
}

// Int returns a random int32; negative values are as likely as positive ones.
func (g *Generator) Int() int32 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return int32(g.rng.Uint32()) //nolint:gosec
}

// Uint64 returns a random uint64.
func (g *Generator) Uint64() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.rng.Uint64()
}

// Index returns a random integer in [0, bound). A non-positive bound wraps
// errs.ErrInvalidParameter.
func (g *Generator) Index(bound int) (int, error) {
	if bound <= 0 {
		return 0, fmt.Errorf("%w: index bound must be positive, got %d", errs.ErrInvalidParameter, bound)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.rng.IntN(bound), nil
}

// Probability returns a random float64 in [0, 1).
func (g *Generator) Probability() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.rng.Float64()
}

// Gaussian returns a normally distributed float64 with mean 0 and standard deviation 1.
func (g *Generator) Gaussian() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.rng.NormFloat64()
}
