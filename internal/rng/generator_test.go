package rng

import (
	"errors"
	"math"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

var algorithms = []Algorithm{ChaCha, XorShift, PCG}

func TestRangeBounds(t *testing.T) {
	for _, alg := range algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			g, err := NewWithAlgorithm(alg)
			require.NoError(t, err)

			for i := 0; i < 1000; i++ {
				n := Range(g, Closed(1, 10))
				require.True(t, n >= 1 && n <= 10, "closed int %d", n)

				m := Range(g, HalfOpen(1, 10))
				require.True(t, m >= 1 && m < 10, "half-open int %d", m)

				neg := Range(g, HalfOpen[int64](-50, -40))
				require.True(t, neg >= -50 && neg < -40, "negative %d", neg)

				f := Range(g, HalfOpen[float32](-5000, 5000))
				require.True(t, f >= -5000 && f < 5000, "float32 %v", f)

				d := Range(g, Closed(-1.5, 2.5))
				require.True(t, d >= -1.5 && d <= 2.5, "float64 %v", d)

				b := Range(g, Closed[uint8](250, 255))
				require.True(t, b >= 250, "uint8 %d", b)
			}
		})
	}
}

func TestRangeSingleValue(t *testing.T) {
	g := Seeded(7)
	require.Equal(t, 5, Range(g, Closed(5, 5)))
	require.Equal(t, 5, Range(g, HalfOpen(5, 6)))
	require.Equal(t, 0.25, Range(g, Closed(0.25, 0.25)))
}

func TestRangeFullDomain(t *testing.T) {
	g := Seeded(11)
	var sawNegative, sawPositive bool
	for i := 0; i < 1000; i++ {
		v := Range(g, Closed[int64](math.MinInt64, math.MaxInt64))
		sawNegative = sawNegative || v < 0
		sawPositive = sawPositive || v > 0

		b := Range(g, Closed[uint8](0, math.MaxUint8))
		require.LessOrEqual(t, b, uint8(math.MaxUint8))

		i8 := Range(g, Closed[int8](math.MinInt8, math.MaxInt8))
		require.True(t, i8 >= math.MinInt8 && i8 <= math.MaxInt8)
	}
	require.True(t, sawNegative && sawPositive)
}

func TestReproducibility(t *testing.T) {
	for _, alg := range algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			a := SeededWithAlgorithm(alg, 1)
			b := SeededWithAlgorithm(alg, 1)
			other := SeededWithAlgorithm(alg, 1)

			for i := 0; i < 1000; i++ {
				// Drawing from an unrelated instance must not disturb a or b.
				Next[uint64](other)

				require.Equal(t, Range(a, HalfOpen[uint32](0, math.MaxUint32)),
					Range(b, HalfOpen[uint32](0, math.MaxUint32)))
				require.Equal(t, Next[float64](a), Next[float64](b))
				require.Equal(t, Next[int8](a), Next[int8](b))
			}
		})
	}
}

func TestSeedsDiffer(t *testing.T) {
	for _, alg := range algorithms {
		a := SeededWithAlgorithm(alg, 1)
		b := SeededWithAlgorithm(alg, 2)
		same := 0
		for i := 0; i < 100; i++ {
			if a.Uint64() == b.Uint64() {
				same++
			}
		}
		require.Less(t, same, 2, alg.String())
	}
}

func TestLockedMatchesGenerator(t *testing.T) {
	for _, alg := range algorithms {
		g := SeededWithAlgorithm(alg, 99)
		l := SeededLockedWithAlgorithm(alg, 99)
		for i := 0; i < 1000; i++ {
			require.Equal(t, Range(g, Closed(1, 6)), Range(l, Closed(1, 6)))
			require.Equal(t, g.Uint64(), l.Uint64())
		}
	}
}

func TestNextGeneric(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		n := Next[uint8](g)
		require.LessOrEqual(t, n, uint8(math.MaxUint8))

		f := Next[float64](g)
		require.True(t, f >= 0 && f < 1, "float64 %v", f)

		h := Next[float32](g)
		require.True(t, h >= 0 && h < 1, "float32 %v", h)
	}
}

func TestNextUnbiased(t *testing.T) {
	const perValue = 100
	g := Seeded(2024)

	var counts [256]int
	for i := 0; i < 256*perValue; i++ {
		counts[Next[uint8](g)]++
	}
	for v, c := range counts {
		// Expected 100 with a standard deviation of 10.
		require.Less(t, c, 2*perValue, "value %d drawn %d times", v, c)
	}

	heads := 0
	for i := 0; i < 10000; i++ {
		if Next[bool](g) {
			heads++
		}
	}
	require.InDelta(t, 5000, heads, 300)
}

func TestThreeDiceDistribution(t *testing.T) {
	g := Seeded(3)

	// counts[i] holds the number of 3d6 sums equal to i.
	counts := make([]int, 19)
	for i := 0; i < 1000; i++ {
		roll := Range(g, Closed(1, 6)) + Range(g, Closed(1, 6)) + Range(g, Closed(1, 6))
		counts[roll]++
	}

	mode := 3
	for sum := 3; sum <= 18; sum++ {
		if counts[sum] > counts[mode] {
			mode = sum
		}
	}
	require.True(t, mode >= 8 && mode <= 13, "mode %d", mode)

	middle := counts[10] + counts[11]
	require.Greater(t, middle, counts[3]+counts[4]+counts[5])
	require.Greater(t, middle, counts[16]+counts[17]+counts[18])
	require.Greater(t, counts[7]+counts[8], counts[3]+counts[4])
	require.Greater(t, counts[13]+counts[14], counts[17]+counts[18])
}

func TestInvalidBounds(t *testing.T) {
	g := Seeded(5)

	tests := []struct {
		name string
		fn   func() error
		want error
	}{
		{"inverted closed", func() error { _, err := TryRange(g, Closed(6, 1)); return err }, ErrEmptyRange},
		{"empty half-open", func() error { _, err := TryRange(g, HalfOpen(3, 3)); return err }, ErrEmptyRange},
		{"nan", func() error { _, err := TryRange(g, HalfOpen(math.NaN(), 1)); return err }, ErrNonFinite},
		{"inf", func() error { _, err := TryRange(g, Closed(0, math.Inf(1))); return err }, ErrNonFinite},
		{"overflowing span", func() error {
			_, err := TryRange(g, HalfOpen(-math.MaxFloat64, math.MaxFloat64))
			return err
		}, ErrNonFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.fn(), tt.want)
		})
	}

	require.PanicsWithError(t, "rng: empty range: [6, 1]", func() {
		Range(g, Closed(6, 1))
	})

	// A rejected request consumes no state.
	a, b := Seeded(8), Seeded(8)
	_, err := TryRange(a, HalfOpen(1, 1))
	require.Error(t, err)
	require.Equal(t, a.Uint64(), b.Uint64())
}

func TestEntropyFailure(t *testing.T) {
	saved := entropy
	entropy = iotest.ErrReader(errors.New("no entropy"))
	defer func() { entropy = saved }()

	for _, alg := range algorithms {
		_, err := NewWithAlgorithm(alg)
		require.ErrorIs(t, err, ErrEntropy)

		_, err = NewLockedWithAlgorithm(alg)
		require.ErrorIs(t, err, ErrEntropy)
	}
}

func TestShuffle(t *testing.T) {
	g := Seeded(13)
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	Shuffle(g, items)

	seen := make(map[int]bool)
	for _, v := range items {
		seen[v] = true
	}
	require.Len(t, seen, 10)

	again := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	Shuffle(Seeded(13), again)
	require.Equal(t, items, again)
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr error
	}{
		{"", DefaultAlgorithm, nil},
		{"chacha", ChaCha, nil},
		{" XorShift ", XorShift, nil},
		{"pcg", PCG, nil},
		{"mt19937", 0, ErrUnknownAlgorithm},
	}
	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.in)
		if tt.wantErr != nil {
			require.ErrorIs(t, err, tt.wantErr)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}

	require.Equal(t, "Algorithm(9)", Algorithm(9).String())
	require.Panics(t, func() { SeededWithAlgorithm(Algorithm(9), 1) })
}

func TestChaChaRekeyIsDeterministic(t *testing.T) {
	var key [32]byte
	a, b := newChaChaSource(key), newChaChaSource(key)
	a.blocks = blocksPerNonce - 1
	b.blocks = blocksPerNonce - 1
	for i := 0; i < 64; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
	require.NotEqual(t, nonce{}, a.nonce)
}

func TestXorShiftZeroSeed(t *testing.T) {
	s := newXorShiftSource(0)
	require.NotZero(t, s.Uint64())
}
