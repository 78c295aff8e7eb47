package rng

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"golang.org/x/crypto/chacha20"
)

// Source is a stream of uniformly distributed 64-bit words.  It matches
// math/rand/v2.Source, so generators can drive gonum distributions directly.
type Source interface {
	Uint64() uint64
}

// Algorithm selects the bit generator behind a Generator or Locked.  It is
// fixed when the generator is constructed.
type Algorithm uint8

const (
	// ChaCha is a ChaCha20 keystream; the general purpose default.
	ChaCha Algorithm = iota
	// XorShift is xorshift64*: tiny state, very fast, weaker statistics.
	XorShift
	// PCG is the 128-bit PCG-DXSM generator from math/rand/v2.
	PCG
)

var ErrUnknownAlgorithm = errors.New("rng: unknown algorithm")

var algorithmNames = [...]string{
	ChaCha:   "chacha",
	XorShift: "xorshift",
	PCG:      "pcg",
}

func (a Algorithm) String() string {
	if a.Valid() {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// Valid reports whether a names a known algorithm.
func (a Algorithm) Valid() bool {
	return int(a) < len(algorithmNames)
}

// ParseAlgorithm maps a configuration name to an Algorithm.  The empty string
// selects DefaultAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultAlgorithm, nil
	}
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// seeded expands seed with SplitMix64 into the full algorithm state.
func (a Algorithm) seeded(seed uint64) Source {
	sm := splitMix64(seed)
	switch a {
	case ChaCha:
		var key [chacha20.KeySize]byte
		sm.fill(key[:])
		return newChaChaSource(key)
	case XorShift:
		return newXorShiftSource(sm.next())
	case PCG:
		return rand.NewPCG(sm.next(), sm.next())
	}
	panic(fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a))
}

// fromEntropy fills the full algorithm state from the entropy source.
func (a Algorithm) fromEntropy() (Source, error) {
	switch a {
	case ChaCha:
		var key [chacha20.KeySize]byte
		if err := readEntropy(key[:]); err != nil {
			return nil, err
		}
		return newChaChaSource(key), nil
	case XorShift:
		var b [8]byte
		if err := readEntropy(b[:]); err != nil {
			return nil, err
		}
		return newXorShiftSource(binary.LittleEndian.Uint64(b[:])), nil
	case PCG:
		var b [16]byte
		if err := readEntropy(b[:]); err != nil {
			return nil, err
		}
		return rand.NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
}
