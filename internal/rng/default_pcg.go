//go:build rng_pcg

package rng

// DefaultAlgorithm is used by New, Seeded and their Locked counterparts.
const DefaultAlgorithm = PCG
