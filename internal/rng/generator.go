package rng

// Generator is the exclusive-access generator.  It has no internal locking and
// is not safe for concurrent use: exactly one owner may call it at a time.
// Share a Locked instead when several goroutines need the same stream.
type Generator struct {
	c core
}

// New returns a Generator using DefaultAlgorithm seeded from the operating
// system entropy source.  The error wraps ErrEntropy.
func New() (*Generator, error) {
	return NewWithAlgorithm(DefaultAlgorithm)
}

// NewWithAlgorithm is New with an explicit algorithm.
func NewWithAlgorithm(alg Algorithm) (*Generator, error) {
	c, err := newCore(alg)
	if err != nil {
		return nil, err
	}
	return &Generator{c: c}, nil
}

// Seeded returns a Generator using DefaultAlgorithm whose output is fully
// determined by seed.
func Seeded(seed uint64) *Generator {
	return SeededWithAlgorithm(DefaultAlgorithm, seed)
}

// SeededWithAlgorithm is Seeded with an explicit algorithm.
// Panics if alg is not a known Algorithm.
func SeededWithAlgorithm(alg Algorithm, seed uint64) *Generator {
	return &Generator{c: seededCore(alg, seed)}
}

// Algorithm returns the algorithm g was constructed with.
func (g *Generator) Algorithm() Algorithm {
	return g.c.alg
}

// Uint64 returns a uniform random uint64.
func (g *Generator) Uint64() uint64 {
	return g.c.src.Uint64()
}

func (g *Generator) with(f func(c *core)) {
	f(&g.c)
}
