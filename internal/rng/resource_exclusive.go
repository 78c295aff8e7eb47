//go:build !rng_locking

package rng

// Resource is the generator type Plugin installs in a host app.
type Resource = *Generator

// Locking reports whether Resource is the shared-access variant.
const Locking = false

func newResource(alg Algorithm) (Resource, error) {
	return NewWithAlgorithm(alg)
}

func seededResource(alg Algorithm, seed uint64) Resource {
	return SeededWithAlgorithm(alg, seed)
}
