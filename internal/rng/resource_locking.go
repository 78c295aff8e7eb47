//go:build rng_locking

package rng

// Resource is the generator type Plugin installs in a host app.
type Resource = *Locked

// Locking reports whether Resource is the shared-access variant.
const Locking = true

func newResource(alg Algorithm) (Resource, error) {
	return NewLockedWithAlgorithm(alg)
}

func seededResource(alg Algorithm, seed uint64) Resource {
	return SeededLockedWithAlgorithm(alg, seed)
}
