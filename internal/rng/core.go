package rng

import (
	"fmt"
	"math/bits"
)

// core is the state shared by both variants.  All sampling goes through it.
type core struct {
	alg Algorithm
	src Source
}

func newCore(alg Algorithm) (core, error) {
	src, err := alg.fromEntropy()
	if err != nil {
		return core{}, err
	}
	return core{alg: alg, src: src}, nil
}

func seededCore(alg Algorithm, seed uint64) core {
	if !alg.Valid() {
		panic(fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg))
	}
	return core{alg: alg, src: alg.seeded(seed)}
}

// uint64n returns a uniform value in [0,n) without modulo bias.  n must not
// be zero.
func (c *core) uint64n(n uint64) uint64 {
	if n&(n-1) == 0 { // n is power of two, can mask
		return c.src.Uint64() & (n - 1)
	}

	// Lemire's multiply-shift: take the high word of x*n and reject the
	// 2⁶⁴ % n low words that would favour small results.  thresh < n, so the
	// division only happens when lo < n.
	hi, lo := bits.Mul64(c.src.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(c.src.Uint64(), n)
		}
	}
	return hi
}

// float64 returns a value in [0,1) with 53 bits of precision.
func (c *core) float64() float64 {
	return float64(c.src.Uint64()>>11) * 0x1.0p-53
}

// float64Closed returns a value in [0,1].
func (c *core) float64Closed() float64 {
	return float64(c.src.Uint64()>>11) / (1<<53 - 1)
}

// float32 returns a value in [0,1) with 24 bits of precision.
func (c *core) float32() float32 {
	return float32(c.src.Uint64()>>40) * 0x1.0p-24
}
