//go:build rng_xorshift && !rng_pcg

package rng

// DefaultAlgorithm is used by New, Seeded and their Locked counterparts.
const DefaultAlgorithm = XorShift
