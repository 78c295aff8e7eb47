package rng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrEntropy is returned by the entropy-seeded constructors when the
// operating system source cannot be read.
var ErrEntropy = errors.New("rng: entropy source unavailable")

// entropy is swapped out by tests.
var entropy io.Reader = cryptorand.Reader

func readEntropy(b []byte) error {
	if _, err := io.ReadFull(entropy, b); err != nil {
		return fmt.Errorf("%w: %w", ErrEntropy, err)
	}
	return nil
}

const goldenGamma = 0x9e3779b97f4a7c15

// splitMix64 expands a single 64-bit seed into a stream of well mixed words.
type splitMix64 uint64

func (s *splitMix64) next() uint64 {
	*s += goldenGamma
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func (s *splitMix64) fill(b []byte) {
	var w [8]byte
	for len(b) > 0 {
		binary.LittleEndian.PutUint64(w[:], s.next())
		n := copy(b, w[:])
		b = b[n:]
	}
}
