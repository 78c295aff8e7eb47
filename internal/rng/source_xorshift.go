package rng

// xorShiftSource is xorshift64* (12/25/27 shifts with Vigna's multiplier).
// The state must never be zero.
type xorShiftSource struct {
	state uint64
}

func newXorShiftSource(seed uint64) *xorShiftSource {
	if seed == 0 {
		seed = goldenGamma
	}
	return &xorShiftSource{state: seed}
}

func (s *xorShiftSource) Uint64() uint64 {
	x := s.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	s.state = x
	return x * 0x2545f4914f6cdd1d
}
