// Package rng implements a seedable pseudorandom number generator for games
// and simulations.  It is fast and statistically sound but it is not a
// CSPRNG and must not be used for secrets.
//
// Two variants share one sampling contract.  Generator has no internal
// synchronization and belongs to a single owner.  Locked guards the same
// state with a mutex so it can be shared between goroutines.  Both are
// consumed through the Sampler interface by Range, TryRange, Next and Shuffle.
//
// A generator is either seeded from the operating system entropy source (New,
// NewLocked) or from a 64-bit seed (Seeded, SeededLocked).  Seeded generators
// using the same Algorithm produce identical sequences on every platform.
//
// The default algorithm is picked at build time: ChaCha unless the binary is
// built with the rng_xorshift or rng_pcg tag.  The generator type installed by
// Plugin is Generator unless the binary is built with the rng_locking tag.
package rng
