package rng

import "sync"

// Locked is the shared-access generator.  Every call takes an internal mutex
// for its whole duration, so one instance may be used from many goroutines.
// Concurrent callers are served in no particular order.  Calling back into
// the same Locked while a call is in progress deadlocks.
type Locked struct {
	mu sync.Mutex
	c  core
}

// NewLocked returns a Locked using DefaultAlgorithm seeded from the operating
// system entropy source.  The error wraps ErrEntropy.
func NewLocked() (*Locked, error) {
	return NewLockedWithAlgorithm(DefaultAlgorithm)
}

// NewLockedWithAlgorithm is NewLocked with an explicit algorithm.
func NewLockedWithAlgorithm(alg Algorithm) (*Locked, error) {
	c, err := newCore(alg)
	if err != nil {
		return nil, err
	}
	return &Locked{c: c}, nil
}

// SeededLocked returns a Locked using DefaultAlgorithm whose output is fully
// determined by seed and the order in which calls acquire the lock.
func SeededLocked(seed uint64) *Locked {
	return SeededLockedWithAlgorithm(DefaultAlgorithm, seed)
}

// SeededLockedWithAlgorithm is SeededLocked with an explicit algorithm.
// Panics if alg is not a known Algorithm.
func SeededLockedWithAlgorithm(alg Algorithm, seed uint64) *Locked {
	return &Locked{c: seededCore(alg, seed)}
}

// Algorithm returns the algorithm l was constructed with.
func (l *Locked) Algorithm() Algorithm {
	return l.c.alg
}

// Uint64 returns a uniform random uint64.
func (l *Locked) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.c.src.Uint64()
}

func (l *Locked) with(f func(c *core)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f(&l.c)
}
